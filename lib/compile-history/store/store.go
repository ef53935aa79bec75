package compilehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "leave-tools-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.CompileRun) error
	List(limit int) ([]dbmodels.CompileRun, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.CompileRun) error {
	if err := i.db.Create(&rec).Error; err != nil {
		return errors.Wrap(err, "unable to save compile run")
	}
	return nil
}

func (i impl) List(limit int) ([]dbmodels.CompileRun, error) {
	var result []dbmodels.CompileRun
	err := i.db.Model(dbmodels.CompileRun{}).
		Order("created_at desc").
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "unable to list compile runs")
	}
	return result, nil
}

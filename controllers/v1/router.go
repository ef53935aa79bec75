package apiv1

import "github.com/gofiber/fiber/v2"

// InitRouters mounts every v1 group on apiV1.
func InitRouters(apiV1 *fiber.App) {
	InitConsultantApiRouters(apiV1)

	session := fiber.New()
	apiV1.Mount("/session", session)
	InitSessionApiRouters(session)

	leave := fiber.New()
	apiV1.Mount("/leave", leave)
	InitLeaveApiRouters(leave)

	// compile is reachable only from an unlocked session
	compile := fiber.New()
	apiV1.Mount("/compile", compile)
	InitCompileApiRouters(compile)
}

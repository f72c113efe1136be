package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/flosch/pongo2/v6"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"shieldbot/service"
)

// Config holds web server configuration.
type Config struct {
	RecaptchaSiteKey string
}

// Server hosts the CAPTCHA-gated verification flow banned users redeem
// their tokens through.
type Server struct {
	app        *fiber.App
	config     Config
	moderation service.ModerationService
	captcha    CaptchaVerifier
}

// NewServer builds the verification web server.
func NewServer(config Config, moderation service.ModerationService, captcha CaptchaVerifier) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "shieldbot verification",
		DisableStartupMessage: true,
	})

	s := &Server{
		app:        app,
		config:     config,
		moderation: moderation,
		captcha:    captcha,
	}

	app.Get("/", s.handleIndex)
	app.Get("/verify/:token?", s.handleVerifyPage)
	app.Post("/verify/:token?", s.handleVerifySubmit)
	app.Use(s.handleNotFound)

	return s
}

// Listen blocks serving HTTP on the address.
func (s *Server) Listen(addr string) error {
	log.Infof("Verification server listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) render(c *fiber.Ctx, status int, template *pongo2.Template, data pongo2.Context) error {
	html, err := template.Execute(data)
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	c.Status(status)
	c.Type("html", "utf-8")
	return c.SendString(html)
}

func (s *Server) renderError(c *fiber.Ctx, status int, title, text string) error {
	return s.render(c, status, errorTemplate, pongo2.Context{
		"title": title,
		"text":  text,
	})
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, indexTemplate, nil)
}

func (s *Server) handleVerifyPage(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return s.renderError(c, fiber.StatusBadRequest,
			"No ban ID specified", "Make sure you use a valid verification link.")
	}

	ban, err := s.moderation.PendingBan(token)
	if err != nil {
		log.Errorf("Failed to look up pending ban: %v", err)
		return s.renderError(c, fiber.StatusInternalServerError,
			"Something went wrong", "Try again in a moment.")
	}
	if ban == nil {
		return s.renderError(c, fiber.StatusNotFound,
			"Invalid ban ID", fmt.Sprintf("Ban with ID %s could not be found.", token))
	}

	return s.render(c, fiber.StatusOK, verifyTemplate, pongo2.Context{
		"token":    token,
		"user_tag": ban.AccountTag,
		"site_key": s.config.RecaptchaSiteKey,
	})
}

func (s *Server) handleVerifySubmit(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No ban ID specified",
		})
	}

	ban, err := s.moderation.PendingBan(token)
	if err != nil {
		log.Errorf("Failed to look up pending ban: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong",
		})
	}
	if ban == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invalid ban ID",
		})
	}

	if err := s.captcha.Verify(c.UserContext(), c.FormValue("g-recaptcha-response"), c.IP()); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Captcha verification failed",
		})
	}

	if err := s.moderation.AttemptVerification(c.UserContext(), token); err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, service.ErrBanNotFound) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{})
}

func (s *Server) handleNotFound(c *fiber.Ctx) error {
	return s.renderError(c, fiber.StatusNotFound,
		"Page not found", "The requested page does not exist.")
}

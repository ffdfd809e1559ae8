package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

func HandleWithFiber[R Request, Res Response](handler FiberHandler[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := parseRequest(c, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "details": err.Error()})
		}

		res, status, err := handler.Handle(c, c.UserContext(), &req)
		return writeResponse(c, res, status, err)
	}
}

func writeResponse[Res Response](c *fiber.Ctx, res *Res, status int, err error) error {
	if err != nil {
		if status == 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= fiber.StatusInternalServerError {
			zap.L().Error("Failed to handle request",
				zap.String("path", c.Path()),
				zap.Any("request_id", c.Locals("requestid")),
				zap.Error(err),
			)
		} else {
			zap.L().Debug("Request rejected", zap.String("path", c.Path()), zap.Int("status", status), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(res)
}

func parseRequest[R any](c *fiber.Ctx, req *R) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return err
		}
	}

	if err := c.ParamsParser(req); err != nil {
		return err
	}

	if err := c.QueryParser(req); err != nil {
		return err
	}

	if err := c.ReqHeaderParser(req); err != nil {
		return err
	}

	return nil
}

// HandleWithFiberWS upgrades the connection. Non-upgrade requests get 426.
func HandleWithFiberWS[R Request](handler FiberWSHandler[R]) fiber.Handler {
	upgrade := websocket.New(func(c *websocket.Conn) {
		var req R
		handler.HandleWS(c, context.Background(), &req)
	})

	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals(SessionLocalKey, SessionID(c))
		return upgrade(c)
	}
}

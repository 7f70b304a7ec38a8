package service

import (
	"github.com/MKhiriev/go-syncml/internal/config"
	"github.com/MKhiriev/go-syncml/internal/logger"
	"github.com/MKhiriev/go-syncml/models"
)

type Services struct {
	CommandHandler CommandHandler
	StatusHandler  StatusHandler
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) *Services {
	role := models.Role(cfg.App.Role)

	return &Services{
		CommandHandler: NewCommandValidationHandler(logger).Wrap(NewCommandHandler(role, logger.Component("command_handler"))),
		StatusHandler:  NewStatusHandler(logger.Component("status_handler")),
	}
}

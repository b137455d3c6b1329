package metrics

import (
	"shipledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

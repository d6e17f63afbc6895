package rate_limiter

import "deliverytracker/pkg/logger"

// RequestBudget решает, хватает ли бюджета на очередной запрос к /api.
// Реализация по умолчанию token_bucket.TokenBucket.
type RequestBudget interface {
	Allow() bool
}

type middlewareLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

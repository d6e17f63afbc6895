package delivery_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"deliverytracker/internal/entities"
	"deliverytracker/internal/pkg/metrics"
	"deliverytracker/internal/service/delivery"
	"deliverytracker/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	// manualCommit коммит офсета после каждого сообщения, когда автокоммит sarama выключен
	manualCommit bool
}

func New(log handlerLogger, service Service, timeout time.Duration, autoCommit bool) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(),
		messageProcessingTimeout: timeout,
		manualCommit:             !autoCommit,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.confirmed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.processMessage(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// processMessage возвращает true, если ConsumeClaim нужно прервать:
// сообщение не помечается и будет обработано повторно.
func (h *Handler) processMessage(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.Error("delivery.confirmed: bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		h.markProcessed(sess, message)
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_number", event.OrderNumber),
		logger.NewField("offset", message.Offset),
	)

	confirmed, err := h.service.ConfirmDelivery(ctx, entities.DeliveryConfirmation{
		OrderNumber: event.OrderNumber,
		Signature:   event.Signature,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("delivery.confirmed: context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, delivery.ErrValidation):
			msgLog.Warn("delivery.confirmed: invalid event", logger.NewField("error", err))

		case errors.Is(err, delivery.ErrOrderNotFound):
			msgLog.Warn("delivery.confirmed: order not found")

		case errors.Is(err, delivery.ErrAlreadyDelivered):
			msgLog.Info("delivery.confirmed: order already delivered, skipped")

		default:
			msgLog.Error("delivery.confirmed: failed to confirm delivery", logger.NewField("error", err))
		}
		h.markProcessed(sess, message)
		return false
	}

	metrics.DeliveryConfirmations.WithLabelValues(metrics.ConfirmationSourceKafka).Inc()
	msgLog.Info("delivery.confirmed: processed", logger.NewField("delivery_id", confirmed.ID))

	h.markProcessed(sess, message)
	return false
}

func (h *Handler) markProcessed(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	sess.MarkMessage(message, "")
	if h.manualCommit {
		sess.Commit()
	}
}

package services

import (
	"carpetstore/internal/models"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// StockAlertQueue is the queue low-stock alerts are published to.
const StockAlertQueue = "stock_alerts"

// Publisher sends a message body to a queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// StockAlert is published after a carpet is saved with a low stock level.
type StockAlert struct {
	CarpetID      string            `json:"carpetId"`
	Name          string            `json:"name"`
	StockQuantity int               `json:"stockQuantity"`
	Level         models.StockLevel `json:"level"`
}

// StockAlertHandler returns a consumer callback that decodes stock alerts and
// logs them. Undecodable bodies are rejected.
func StockAlertHandler(log *zap.Logger) func(body []byte) error {
	if log == nil {
		log = zap.NewNop()
	}
	return func(body []byte) error {
		var alert StockAlert
		if err := json.Unmarshal(body, &alert); err != nil {
			return fmt.Errorf("failed to decode stock alert: %w", err)
		}
		if alert.CarpetID == "" {
			return fmt.Errorf("stock alert without carpet id")
		}

		log.Warn("carpet stock is low",
			zap.String("carpet_id", alert.CarpetID),
			zap.String("name", alert.Name),
			zap.Int("stock", alert.StockQuantity),
			zap.String("level", string(alert.Level)),
		)
		return nil
	}
}

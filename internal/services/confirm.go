package helpnet

import (
	"context"

	interf "github.com/glkeru/helpnet/internal/interfaces"
	models "github.com/glkeru/helpnet/internal/models"
	"go.uber.org/zap"
)

type ConfirmService struct {
	members  interf.MemberStorage
	pairings interf.PairingStorage
	cache    interf.CacheStorage
	logger   *zap.Logger
}

func NewConfirmService(members interf.MemberStorage, pairings interf.PairingStorage, cache interf.CacheStorage, logger *zap.Logger) *ConfirmService {
	return &ConfirmService{members, pairings, cache, logger}
}

// Подтверждение входящей помощи получателем: статус на обеих проекциях,
// транзакционный инкремент helpreceived, на пороге уровня - hold и
// зачистка pending-пар сверх лимита
func (c *ConfirmService) Confirm(ctx context.Context, docID string) error {
	pairing, err := c.pairings.Confirm(ctx, docID)
	if err != nil {
		return err
	}

	receiver, err := c.members.GetMember(ctx, pairing.ReceiverUID)
	if err != nil {
		return err
	}
	cfg, ok := models.LevelFor(receiver.Level)
	if !ok {
		unknownLevelTotal.Inc()
		c.logger.Warn("unknown level, falling back to Star config", zap.String("level", receiver.Level))
	}

	helpReceived, held, err := c.members.ConfirmReceived(ctx, receiver.UID, cfg.TotalHelps)
	if err != nil {
		return err
	}

	if c.cache != nil {
		err = c.cache.InvalidateConfirmedCount(ctx, pairing.ReceiverID)
		if err != nil {
			c.logger.Error(err.Error())
		}
	}

	if held {
		deleted, err := c.pairings.DeletePendingOverCap(ctx, pairing.ReceiverID, cfg.TotalHelps)
		if err != nil {
			c.logger.Error("cleanup over cap failed",
				zap.String("receiver", pairing.ReceiverID),
				zap.Error(err))
		}
		for range deleted {
			err = c.members.ReleaseSlot(ctx, receiver.UID)
			if err != nil {
				c.logger.Error("release slot failed", zap.String("uid", receiver.UID), zap.Error(err))
			}
		}
	}

	c.logger.Info("help confirmed",
		zap.String("docid", docID),
		zap.String("receiver", pairing.ReceiverID),
		zap.Int("helpreceived", helpReceived),
		zap.Bool("held", held))
	return nil
}

// Отклонение помощи: слот получателя освобождается, отправителя доберет
// следующий массовый проход
func (c *ConfirmService) Reject(ctx context.Context, docID string) error {
	pairing, err := c.pairings.Reject(ctx, docID)
	if err != nil {
		return err
	}
	err = c.members.ReleaseSlot(ctx, pairing.ReceiverUID)
	if err != nil {
		c.logger.Error("release slot failed", zap.String("uid", pairing.ReceiverUID), zap.Error(err))
	}
	c.logger.Info("help rejected",
		zap.String("docid", docID),
		zap.String("receiver", pairing.ReceiverID))
	return nil
}

package helpnet

import (
	"context"

	models "github.com/glkeru/helpnet/internal/models"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=helpnet . MemberStorage,PairingStorage,CacheStorage

type MemberStorage interface {
	GetMember(ctx context.Context, uid string) (models.Member, error)
	GetActiveMembers(ctx context.Context) ([]models.Member, error)
	// предфильтрованная выборка кандидатов для мгновенного назначения,
	// отсортирована по referralcount по убыванию
	QueryReceiverCandidates(ctx context.Context, limit int) ([]models.Member, error)
	// атомарный резерв слота получателя: inc assignedcount, если held-флаги
	// сняты и assignedcount < cap
	TryReserveSlot(ctx context.Context, uid string, cap int) error
	ReleaseSlot(ctx context.Context, uid string) error
	// isOnHold + isReceivingHeld = true
	HoldReceiving(ctx context.Context, uid string) error
	// транзакционный инкремент helpreceived, на пороге cap ставит held-флаги
	ConfirmReceived(ctx context.Context, uid string, cap int) (helpReceived int, held bool, err error)
	SetSendHelpAssigned(ctx context.Context, uid string, assigned bool) error
	GetForceReceiver(ctx context.Context) (models.ForceReceiver, error)
}

type PairingStorage interface {
	// обе проекции в одной транзакции, дубликат пары (sender, receiver) отклоняется
	CreatePairing(ctx context.Context, pairing models.HelpPairing) error
	GetBySender(ctx context.Context, senderUID string) ([]models.HelpPairing, error)
	GetByReceiver(ctx context.Context, receiverUID string) ([]models.HelpPairing, error)
	ExistsPair(ctx context.Context, senderUID string, receiverUID string) (bool, error)
	CountConfirmedByReceiver(ctx context.Context, receiverID string) (int, error)
	Confirm(ctx context.Context, docID string) (models.HelpPairing, error)
	Reject(ctx context.Context, docID string) (models.HelpPairing, error)
	// удаление pending-пар без пруфа оплаты сверх лимита, старейшие остаются
	DeletePendingOverCap(ctx context.Context, receiverID string, max int) ([]models.HelpPairing, error)
}

type CacheStorage interface {
	GetConfirmedCount(ctx context.Context, receiverID string) (int, error)
	SetConfirmedCount(ctx context.Context, receiverID string, count int) error
	InvalidateConfirmedCount(ctx context.Context, receiverID string) error
}

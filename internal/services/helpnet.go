package helpnet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	interf "github.com/glkeru/helpnet/internal/interfaces"
	models "github.com/glkeru/helpnet/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// окно просмотра кандидатов для мгновенного назначения
const candidateWindow = 20

// жесткий порог подтвержденных входящих на пути мгновенного назначения
const confirmedCap = 3

type AssignmentService struct {
	members  interf.MemberStorage
	pairings interf.PairingStorage
	cache    interf.CacheStorage
	logger   *zap.Logger
}

func NewAssignmentService(members interf.MemberStorage, pairings interf.PairingStorage, cache interf.CacheStorage, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{members, pairings, cache, logger}
}

type SweepSummary struct {
	Assigned int `json:"assigned"` // создано пар
	Skipped  int `json:"skipped"`  // отправителей без новых пар
}

// Массовый проход по активным участникам: каждому отправителю добираем
// получателей до нормы его уровня. Повторный запуск не создает лишних пар -
// остаток всегда пересчитывается от сохраненного состояния
func (s *AssignmentService) RunBulkSweep(ctx context.Context) (SweepSummary, error) {
	members, err := s.members.GetActiveMembers(ctx)
	if err != nil {
		return SweepSummary{}, err
	}
	sweepRuns.Inc()

	semcount := WorkerCount("HELPNET_SWEEP_COUNT", 5)

	// семафор
	semch := make(chan struct{}, semcount)
	wg := &sync.WaitGroup{}
	var assigned, skipped int64

	for _, sender := range members {
		if ctx.Err() != nil {
			break
		}
		semch <- struct{}{}
		wg.Add(1)
		go func(sender models.Member) {
			defer func() {
				wg.Done()
				<-semch
			}()
			count, err := s.assignForSender(ctx, sender, members)
			if err != nil {
				s.logger.Error("sweep: sender failed",
					zap.String("sender", sender.UserID),
					zap.Error(err))
				atomic.AddInt64(&skipped, 1)
				return
			}
			if count > 0 {
				atomic.AddInt64(&assigned, int64(count))
			} else {
				atomic.AddInt64(&skipped, 1)
			}
		}(sender)
	}
	wg.Wait()

	summary := SweepSummary{int(assigned), int(skipped)}
	s.logger.Info("sweep finished",
		zap.Int("assigned", summary.Assigned),
		zap.Int("skipped", summary.Skipped))
	return summary, nil
}

// Добор получателей для одного отправителя
func (s *AssignmentService) assignForSender(ctx context.Context, sender models.Member, pool []models.Member) (int, error) {
	if sender.IsBlocked || sender.IsOnHold || sender.IsReceivingHeld || sender.IsSystemAccount {
		return 0, nil
	}
	if sender.UID == "" || sender.UserID == "" {
		return 0, nil
	}

	cfg := s.levelFor(sender.Level)
	existing, err := s.pairings.GetBySender(ctx, sender.UID)
	if err != nil {
		return 0, err
	}

	// отклоненная пара норму не занимает, замена уйдет другому получателю:
	// уникальный индекс не даст повторить пару с тем же
	live := 0
	paired := make(map[string]bool, len(existing))
	for _, p := range existing {
		paired[p.ReceiverUID] = true
		if p.Status != models.StatusRejected {
			live++
		}
	}
	need := cfg.TotalHelps - live
	if need <= 0 {
		return 0, nil
	}

	// правило лидера сужает выдачу фильтра до лучших по рефералам,
	// поэтому добираем итерациями: выбрали, связали, пересчитали.
	// Исключение кандидата - тоже прогресс: следующая итерация увидит
	// сузившийся пул и спустится к кандидатам с меньшими рефералами
	count := 0
	for count < need {
		candidates := s.selectReceivers(ctx, sender, pool, paired)
		if len(candidates) == 0 {
			break
		}
		progress := false
		for _, receiver := range candidates {
			err := s.attemptPairing(ctx, sender, receiver, sender.Level)
			if err != nil {
				switch {
				case errors.Is(err, models.ErrDuplicatePair),
					errors.Is(err, models.ErrNoPaymentDestination),
					errors.Is(err, models.ErrCapacityExhausted):
					// пара невозможна - исключаем и пробуем следующего
					paired[receiver.UID] = true
					progress = true
				default:
					s.logger.Error("pairing attempt failed",
						zap.String("sender", sender.UserID),
						zap.String("receiver", receiver.UserID),
						zap.Error(err))
				}
				continue
			}
			paired[receiver.UID] = true
			count++
			progress = true
			if count >= need {
				break
			}
		}
		if !progress {
			break
		}
	}
	return count, nil
}

// Подбор получателей для отправителя: ленивое закрытие переполненных,
// фильтрация, сортировка по рефералам и правило лидера
func (s *AssignmentService) selectReceivers(ctx context.Context, sender models.Member, pool []models.Member, paired map[string]bool) []models.Member {
	// у кого helpreceived достиг лимита своего уровня, а флаги еще не стоят -
	// закрываем прием прямо здесь
	g, gctx := errgroup.WithContext(ctx)
	for _, candidate := range pool {
		if candidate.HelpReceived < s.levelFor(candidate.Level).TotalHelps {
			continue
		}
		if candidate.IsOnHold && candidate.IsReceivingHeld {
			continue
		}
		candidate := candidate
		g.Go(func() error {
			err := s.members.HoldReceiving(gctx, candidate.UID)
			if err != nil {
				s.logger.Error("hold receiving failed",
					zap.String("uid", candidate.UID),
					zap.Error(err))
			}
			return nil
		})
	}
	g.Wait()

	var eligible []models.Member
	for _, c := range pool {
		if !c.IsActivated || c.IsOnHold || c.IsReceivingHeld || c.IsSystemAccount {
			continue
		}
		// лимит насыщения считается по уровню самого кандидата
		if c.HelpReceived >= s.levelFor(c.Level).TotalHelps {
			continue
		}
		if c.UID == sender.UID {
			continue
		}
		if c.Level != sender.Level {
			continue
		}
		if !c.HelpVisibility {
			continue
		}
		if !c.PaymentMethod.HasDestination() {
			continue
		}
		if paired[c.UID] {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].ReferralCount > eligible[j].ReferralCount
	})

	// приоритет лидерам по рефералам; если рефералов нет ни у кого -
	// весь отсортированный список
	best := eligible[0].ReferralCount
	if best > 0 {
		var leaders []models.Member
		for _, c := range eligible {
			if c.ReferralCount == best {
				leaders = append(leaders, c)
			}
		}
		return leaders
	}
	return eligible
}

// Одна попытка создать пару: резерв слота получателя, затем запись обеих
// проекций. Любой сбой после резерва возвращает слот
func (s *AssignmentService) attemptPairing(ctx context.Context, sender models.Member, receiver models.Member, level string) error {
	if !receiver.PaymentMethod.HasDestination() {
		return models.ErrNoPaymentDestination
	}

	err := s.members.TryReserveSlot(ctx, receiver.UID, s.levelFor(receiver.Level).TotalHelps)
	if err != nil {
		return err
	}

	pairing := buildPairing(sender, receiver, level)
	err = s.pairings.CreatePairing(ctx, pairing)
	if err != nil && !errors.Is(err, models.ErrDuplicatePair) {
		// один повтор на транзиентный сбой
		err = s.pairings.CreatePairing(ctx, pairing)
	}
	if err != nil {
		relerr := s.members.ReleaseSlot(ctx, receiver.UID)
		if relerr != nil {
			s.logger.Error("release slot failed",
				zap.String("uid", receiver.UID),
				zap.Error(relerr))
		}
		return err
	}

	pairingsCreated.Inc()
	s.logger.Info("pairing created",
		zap.String("docid", pairing.DocID),
		zap.String("sender", sender.UserID),
		zap.String("receiver", receiver.UserID),
		zap.Int("amount", pairing.Amount))
	return nil
}

// Идентификатор пары детерминированный: receiverId_senderId_наносекунды.
// Сумма и реквизиты снимаются на момент назначения и дальше не меняются
func buildPairing(sender models.Member, receiver models.Member, level string) models.HelpPairing {
	now := time.Now()
	ts := now.UnixNano()
	return models.HelpPairing{
		DocID:            fmt.Sprintf("%s_%s_%d", receiver.UserID, sender.UserID, ts),
		SenderUID:        sender.UID,
		SenderID:         sender.UserID,
		SenderName:       sender.FullName,
		SenderPhone:      sender.Phone,
		SenderWhatsapp:   sender.Whatsapp,
		SenderEmail:      sender.Email,
		ReceiverUID:      receiver.UID,
		ReceiverID:       receiver.UserID,
		ReceiverName:     receiver.FullName,
		ReceiverPhone:    receiver.Phone,
		ReceiverWhatsapp: receiver.Whatsapp,
		ReceiverEmail:    receiver.Email,
		Amount:           models.AmountFor(level),
		Level:            level,
		Status:           models.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
		Timestamp:        ts,
		PaymentDetails:   models.PaymentSnapshot{Method: receiver.PaymentMethod},
	}
}

// Мгновенное назначение получателя новому участнику при регистрации.
// Неудача подбора регистрацию не ломает: ставим issendhelpassigned и выходим
func (s *AssignmentService) AssignInitialReceiver(ctx context.Context, uid string) error {
	sender, err := s.members.GetMember(ctx, uid)
	if err != nil {
		return err
	}
	if sender.IsActivated {
		s.logger.Info("member already activated, skip initial assignment", zap.String("uid", uid))
		return nil
	}
	if sender.IsSystemAccount {
		s.logger.Info("system account as sender, skip initial assignment", zap.String("uid", uid))
		return nil
	}

	// принудительный получатель
	force, err := s.members.GetForceReceiver(ctx)
	if err != nil {
		s.logger.Error("get force receiver failed", zap.Error(err))
	} else if force.Enabled && force.ReceiverUID != "" {
		assigned, handled := s.assignForced(ctx, sender, force)
		if handled {
			s.setAssigned(ctx, sender.UID, assigned)
			return nil
		}
	}

	candidates, err := s.members.QueryReceiverCandidates(ctx, candidateWindow)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		s.logger.Warn("no receivers matched the initial query", zap.String("sender", sender.UserID))
		s.setAssigned(ctx, sender.UID, false)
		return nil
	}

	for _, receiver := range candidates {
		if receiver.UID == sender.UID || receiver.IsSystemAccount {
			continue
		}
		if !receiver.PaymentMethod.HasDestination() {
			continue
		}
		// строгий порог: меньше трех подтвержденных входящих
		confirmed, err := s.confirmedCount(ctx, receiver.UserID)
		if err != nil {
			s.logger.Error("confirmed count failed",
				zap.String("receiver", receiver.UserID),
				zap.Error(err))
			continue
		}
		if confirmed >= confirmedCap {
			continue
		}
		exists, err := s.pairings.ExistsPair(ctx, sender.UID, receiver.UID)
		if err != nil || exists {
			continue
		}

		err = s.attemptPairing(ctx, sender, receiver, models.LevelStar)
		if err != nil {
			s.logger.Info("initial pairing attempt failed, trying next",
				zap.String("receiver", receiver.UserID),
				zap.Error(err))
			continue
		}
		s.setAssigned(ctx, sender.UID, true)
		return nil
	}

	s.logger.Warn("all candidates filtered out",
		zap.String("sender", sender.UserID),
		zap.Int("candidates", len(candidates)))
	s.setAssigned(ctx, sender.UID, false)
	return nil
}

// Принудительное назначение: строгие проверки, системные аккаунты никогда.
// handled=false - продолжаем обычный подбор
func (s *AssignmentService) assignForced(ctx context.Context, sender models.Member, force models.ForceReceiver) (assigned bool, handled bool) {
	receiver, err := s.members.GetMember(ctx, force.ReceiverUID)
	if err != nil {
		s.logger.Error("forced receiver not found", zap.String("uid", force.ReceiverUID), zap.Error(err))
		return false, true
	}
	if receiver.IsSystemAccount {
		s.logger.Warn("system account as forced receiver, skipping", zap.String("uid", force.ReceiverUID))
		return false, true
	}
	if !receiver.IsActivated || receiver.IsBlocked || receiver.IsOnHold || receiver.IsReceivingHeld ||
		receiver.HelpReceived >= confirmedCap || !receiver.PaymentMethod.HasDestination() {
		s.logger.Warn("forced receiver failed strict eligibility, falling back to normal selection",
			zap.String("receiver", receiver.UserID))
		return false, false
	}

	err = s.attemptPairing(ctx, sender, receiver, models.LevelStar)
	if err != nil {
		if errors.Is(err, models.ErrCapacityExhausted) {
			s.logger.Warn("forced receiver is at max helps", zap.String("receiver", receiver.UserID))
			return false, true
		}
		s.logger.Error("forced pairing failed", zap.String("receiver", receiver.UserID), zap.Error(err))
		return false, true
	}
	return true, true
}

func (s *AssignmentService) setAssigned(ctx context.Context, uid string, assigned bool) {
	err := s.members.SetSendHelpAssigned(ctx, uid, assigned)
	if err != nil {
		s.logger.Error("set issendhelpassigned failed", zap.String("uid", uid), zap.Error(err))
	}
}

// Подтвержденные входящие: сначала кэш, промах добирается из базы
func (s *AssignmentService) confirmedCount(ctx context.Context, receiverID string) (count int, err error) {
	if s.cache != nil {
		count, err = s.cache.GetConfirmedCount(ctx, receiverID)
		if err == nil {
			return count, nil
		}
	}
	count, err = s.pairings.CountConfirmedByReceiver(ctx, receiverID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetConfirmedCount(ctx, receiverID, count)
	}
	return count, nil
}

// Конфигурация уровня с громким предупреждением о фолбэке на Star
func (s *AssignmentService) levelFor(level string) models.LevelConfig {
	cfg, ok := models.LevelFor(level)
	if !ok {
		unknownLevelTotal.Inc()
		s.logger.Warn("unknown level, falling back to Star config", zap.String("level", level))
	}
	return cfg
}

func WorkerCount(env string, def int) int {
	count := def
	if v := os.Getenv(env); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			count = n
		}
	}
	if count <= 0 {
		count = 1
	}
	return count
}

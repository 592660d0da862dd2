package helpnet

// Конфигурация уровней. Фиксированная таблица, не редактируется в рантайме.

const (
	LevelStar     = "Star"
	LevelSilver   = "Silver"
	LevelGold     = "Gold"
	LevelPlatinum = "Platinum"
	LevelDiamond  = "Diamond"
)

var LevelOrder = []string{LevelStar, LevelSilver, LevelGold, LevelPlatinum, LevelDiamond}

// Типы платежей для разблокировки
const (
	PaymentUpgrade = "upgrade"
	PaymentSponsor = "sponsor"
)

// Точка блокировки: после какого количества подтвержденных помощей
// и какой платеж требуется для продолжения
type BlockPoint struct {
	At      int    `json:"at"`
	Payment string `json:"payment"`
}

type LevelConfig struct {
	TotalHelps     int          `json:"totalHelps"` // требуемое число получателей
	Amount         int          `json:"amount"`     // сумма одной помощи
	BlockPoints    []BlockPoint `json:"blockPoints"`
	UpgradeAmount  int          `json:"upgradeAmount"`  // 0 - апгрейд невозможен
	SponsorPayment int          `json:"sponsorPayment"` // 0 - не требуется
	Next           string       `json:"next"`           // "" - последний уровень
}

var levelConfig = map[string]LevelConfig{
	LevelStar: {
		TotalHelps:    3,
		Amount:        300,
		BlockPoints:   nil, // Star никогда не блокируется автоматически
		UpgradeAmount: 600,
		Next:          LevelSilver,
	},
	LevelSilver: {
		TotalHelps:     9,
		Amount:         600,
		BlockPoints:    []BlockPoint{{At: 4, Payment: PaymentUpgrade}, {At: 7, Payment: PaymentSponsor}},
		UpgradeAmount:  1800,
		SponsorPayment: 1200,
		Next:           LevelGold,
	},
	LevelGold: {
		TotalHelps:     27,
		Amount:         2000,
		BlockPoints:    []BlockPoint{{At: 11, Payment: PaymentUpgrade}, {At: 25, Payment: PaymentSponsor}},
		UpgradeAmount:  20000,
		SponsorPayment: 4000,
		Next:           LevelPlatinum,
	},
	LevelPlatinum: {
		TotalHelps:     81,
		Amount:         20000,
		BlockPoints:    []BlockPoint{{At: 11, Payment: PaymentUpgrade}, {At: 80, Payment: PaymentSponsor}},
		UpgradeAmount:  200000,
		SponsorPayment: 40000,
		Next:           LevelDiamond,
	},
	LevelDiamond: {
		TotalHelps:     243,
		Amount:         200000,
		BlockPoints:    []BlockPoint{{At: 242, Payment: PaymentSponsor}},
		SponsorPayment: 600000,
	},
}

// Конфигурация уровня. Для неизвестного уровня возвращает Star и ok=false,
// вызывающий код обязан залогировать такой фолбэк
func LevelFor(level string) (cfg LevelConfig, ok bool) {
	cfg, ok = levelConfig[level]
	if !ok {
		return levelConfig[LevelStar], false
	}
	return cfg, true
}

func RequiredReceivers(level string) int {
	cfg, _ := LevelFor(level)
	return cfg.TotalHelps
}

func AmountFor(level string) int {
	cfg, _ := LevelFor(level)
	return cfg.Amount
}

func NextLevel(level string) string {
	cfg, _ := LevelFor(level)
	return cfg.Next
}

func IsMaxLevel(level string) bool {
	return level == LevelDiamond
}

func LevelIndex(level string) int {
	for i, l := range LevelOrder {
		if l == level {
			return i
		}
	}
	return -1
}

// апгрейд возможен только на следующий уровень
func CanUpgrade(current, target string) bool {
	ci := LevelIndex(current)
	ti := LevelIndex(target)
	return ci >= 0 && ti == ci+1
}

// Заблокирован ли доход участника на текущем числе подтвержденных помощей
func IsIncomeBlocked(level string, helpReceived int) bool {
	cfg, ok := LevelFor(level)
	if !ok {
		return false
	}
	for _, bp := range cfg.BlockPoints {
		if bp.At == helpReceived {
			return true
		}
	}
	return false
}

// Платеж для разблокировки
type RequiredPayment struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// Какой платеж требуется для снятия блокировки. nil - блокировки нет
func RequiredPaymentForUnblock(level string, helpReceived int) *RequiredPayment {
	cfg, ok := LevelFor(level)
	if !ok {
		return nil
	}
	for _, bp := range cfg.BlockPoints {
		if bp.At != helpReceived {
			continue
		}
		switch bp.Payment {
		case PaymentSponsor:
			return &RequiredPayment{Type: PaymentSponsor, Amount: cfg.SponsorPayment}
		default:
			return &RequiredPayment{Type: PaymentUpgrade, Amount: cfg.UpgradeAmount}
		}
	}
	return nil
}

// Проверка платежа за апгрейд: участник должен стоять на точке блокировки типа upgrade
func ValidateUpgradePayment(level string, helpReceived int) (amount int, ok bool) {
	req := RequiredPaymentForUnblock(level, helpReceived)
	if req == nil || req.Type != PaymentUpgrade {
		return 0, false
	}
	return req.Amount, true
}

// Проверка спонсорского платежа
func ValidateSponsorPayment(level string, helpReceived int) (amount int, ok bool) {
	req := RequiredPaymentForUnblock(level, helpReceived)
	if req == nil || req.Type != PaymentSponsor {
		return 0, false
	}
	return req.Amount, true
}

type LevelEntry struct {
	Level  string      `json:"level"`
	Config LevelConfig `json:"config"`
}

// Таблица уровней для выдачи наружу, в порядке возрастания
func Levels() []LevelEntry {
	out := make([]LevelEntry, 0, len(LevelOrder))
	for _, l := range LevelOrder {
		out = append(out, LevelEntry{l, levelConfig[l]})
	}
	return out
}

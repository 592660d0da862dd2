package helpnet

import (
	"errors"
	"time"
)

// Статусы пары помощи
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusRejected  = "Rejected"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrDuplicatePair        = errors.New("pairing already exists")
	ErrNoPaymentDestination = errors.New("receiver has no payment destination")
	ErrCapacityExhausted    = errors.New("receiver capacity exhausted")
)

// Банковские реквизиты
type BankDetails struct {
	Name          string `bson:"name" json:"name"`
	AccountNumber string `bson:"accountnumber" json:"accountNumber"`
	BankName      string `bson:"bankname" json:"bankName"`
	IFSCCode      string `bson:"ifsccode" json:"ifscCode"`
}

// UPI реквизиты
type UPIDetails struct {
	UPI     string `bson:"upi" json:"upi"`
	GPay    string `bson:"gpay" json:"gpay"`
	PhonePe string `bson:"phonepe" json:"phonePe"`
}

type PaymentMethod struct {
	Bank BankDetails `bson:"bank" json:"bank"`
	UPI  UPIDetails  `bson:"upi" json:"upi"`
}

// есть ли хотя бы один реквизит для перевода
func (p PaymentMethod) HasDestination() bool {
	return p.UPI.UPI != "" || p.Bank.AccountNumber != ""
}

// Участник сети
type Member struct {
	UID                string        `bson:"_id" json:"uid"`       // внутренний идентификатор
	UserID             string        `bson:"userid" json:"userId"` // читаемый идентификатор
	FullName           string        `bson:"fullname" json:"fullName"`
	Phone              string        `bson:"phone" json:"phone"`
	Whatsapp           string        `bson:"whatsapp" json:"whatsapp"`
	Email              string        `bson:"email" json:"email"`
	Level              string        `bson:"level" json:"level"`
	ReferralCount      int           `bson:"referralcount" json:"referralCount"`
	IsActivated        bool          `bson:"isactivated" json:"isActivated"`
	IsBlocked          bool          `bson:"isblocked" json:"isBlocked"`
	IsOnHold           bool          `bson:"isonhold" json:"isOnHold"`
	IsReceivingHeld    bool          `bson:"isreceivingheld" json:"isReceivingHeld"`
	IsSystemAccount    bool          `bson:"issystemaccount" json:"isSystemAccount"`
	HelpVisibility     bool          `bson:"helpvisibility" json:"helpVisibility"`
	HelpReceived       int           `bson:"helpreceived" json:"helpReceived"`       // подтвержденные входящие
	AssignedCount      int           `bson:"assignedcount" json:"assignedCount"`     // входящие pending+confirmed
	IsSendHelpAssigned bool          `bson:"issendhelpassigned" json:"isSendHelpAssigned"`
	LevelCompleted     bool          `bson:"levelcompleted" json:"levelCompleted"`
	PaymentMethod      PaymentMethod `bson:"paymentmethod" json:"paymentMethod"`
	CreatedAt          time.Time     `bson:"createdat" json:"createdAt"`
}

// Снимок реквизитов на момент назначения
type PaymentSnapshot struct {
	Method        PaymentMethod `bson:"method" json:"method"`
	UTRNumber     string        `bson:"utrnumber" json:"utrNumber"`
	ScreenshotURL string        `bson:"screenshoturl" json:"screenshotUrl"`
}

// Пара помощи: одна запись, две проекции (sendHelp и receiveHelp)
type HelpPairing struct {
	DocID               string          `bson:"_id" json:"docId"`
	SenderUID           string          `bson:"senderuid" json:"senderUid"`
	SenderID            string          `bson:"senderid" json:"senderId"`
	SenderName          string          `bson:"sendername" json:"senderName"`
	SenderPhone         string          `bson:"senderphone" json:"senderPhone"`
	SenderWhatsapp      string          `bson:"senderwhatsapp" json:"senderWhatsapp"`
	SenderEmail         string          `bson:"senderemail" json:"senderEmail"`
	ReceiverUID         string          `bson:"receiveruid" json:"receiverUid"`
	ReceiverID          string          `bson:"receiverid" json:"receiverId"`
	ReceiverName        string          `bson:"receivername" json:"receiverName"`
	ReceiverPhone       string          `bson:"receiverphone" json:"receiverPhone"`
	ReceiverWhatsapp    string          `bson:"receiverwhatsapp" json:"receiverWhatsapp"`
	ReceiverEmail       string          `bson:"receiveremail" json:"receiverEmail"`
	Amount              int             `bson:"amount" json:"amount"`
	Level               string          `bson:"level" json:"level"` // уровень отправителя на момент назначения
	Status              string          `bson:"status" json:"status"`
	ConfirmedByReceiver bool            `bson:"confirmedbyreceiver" json:"confirmedByReceiver"`
	ConfirmationTime    *time.Time      `bson:"confirmationtime" json:"confirmationTime"`
	CreatedAt           time.Time       `bson:"createdat" json:"createdAt"`
	UpdatedAt           time.Time       `bson:"updatedat" json:"updatedAt"`
	Timestamp           int64           `bson:"timestamp" json:"timestamp"`
	PaymentDetails      PaymentSnapshot `bson:"paymentdetails" json:"paymentDetails"`
}

// Принудительный получатель (админская настройка)
type ForceReceiver struct {
	Enabled        bool   `bson:"enabled" json:"enabled"`
	ReceiverUID    string `bson:"receiveruid" json:"receiverUid"`
	ReceiverUserID string `bson:"receiveruserid" json:"receiverUserId"`
}

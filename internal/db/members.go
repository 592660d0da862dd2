package helpnet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	models "github.com/glkeru/helpnet/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const forceReceiverDoc = "forceReceiver"

type MemberDB struct {
	mgo      *mongo.Client
	coll     *mongo.Collection
	settings *mongo.Collection
}

func NewMemberDB() (*MemberDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("HELPNET_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env HELPNET_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("helpnetDB")

	return &MemberDB{client, db.Collection("users"), db.Collection("settings")}, nil
}

func (m *MemberDB) GetMember(ctx context.Context, uid string) (models.Member, error) {
	var member models.Member
	err := m.coll.FindOne(ctx, bson.M{"_id": uid}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return member, fmt.Errorf("member %s: %w", uid, models.ErrNotFound)
		}
		return member, err
	}
	return member, nil
}

func (m *MemberDB) GetActiveMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	filter := bson.M{"isactivated": true}
	result, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var member models.Member
		err := result.Decode(&member)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// Выборка кандидатов для мгновенного назначения: фильтр на стороне базы,
// сортировка по referralcount по убыванию, ограниченное окно просмотра
func (m *MemberDB) QueryReceiverCandidates(ctx context.Context, limit int) ([]models.Member, error) {
	filter := bson.M{
		"isactivated":     true,
		"isblocked":       false,
		"isonhold":        false,
		"isreceivingheld": false,
		"helpvisibility":  true,
		"referralcount":   bson.M{"$gte": 0},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "referralcount", Value: -1}}).
		SetLimit(int64(limit))

	result, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var members []models.Member
	for result.Next(ctx) {
		var member models.Member
		err := result.Decode(&member)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

// Атомарный резерв слота: inc только если флаги сняты и лимит не достигнут.
// Две конкурентные попытки на последний слот не могут пройти обе
func (m *MemberDB) TryReserveSlot(ctx context.Context, uid string, cap int) error {
	filter := bson.M{
		"_id":             uid,
		"isonhold":        false,
		"isreceivingheld": false,
		"assignedcount":   bson.M{"$lt": cap},
	}
	update := bson.M{"$inc": bson.M{"assignedcount": 1}}
	err := m.coll.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ErrCapacityExhausted
		}
		return err
	}
	return nil
}

func (m *MemberDB) ReleaseSlot(ctx context.Context, uid string) error {
	filter := bson.M{"_id": uid, "assignedcount": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"assignedcount": -1}}
	err := m.coll.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}

func (m *MemberDB) HoldReceiving(ctx context.Context, uid string) error {
	update := bson.M{"$set": bson.M{"isonhold": true, "isreceivingheld": true}}
	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": uid}, update)
	return err
}

// Подтверждение входящей помощи: инкремент helpreceived и установка
// held-флагов на пороге в одной транзакции
func (m *MemberDB) ConfirmReceived(ctx context.Context, uid string, cap int) (helpReceived int, held bool, err error) {
	sess, err := m.mgo.StartSession()
	if err != nil {
		return 0, false, err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var member models.Member
		err := m.coll.FindOne(sc, bson.M{"_id": uid}).Decode(&member)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fmt.Errorf("member %s: %w", uid, models.ErrNotFound)
			}
			return nil, err
		}
		helpReceived = member.HelpReceived + 1
		set := bson.M{"helpreceived": helpReceived}
		if helpReceived >= cap {
			held = true
			set["isonhold"] = true
			set["isreceivingheld"] = true
			set["levelcompleted"] = true
		}
		_, err = m.coll.UpdateOne(sc, bson.M{"_id": uid}, bson.M{"$set": set})
		return nil, err
	})
	if err != nil {
		return 0, false, err
	}
	return helpReceived, held, nil
}

func (m *MemberDB) SetSendHelpAssigned(ctx context.Context, uid string, assigned bool) error {
	update := bson.M{"$set": bson.M{"issendhelpassigned": assigned}}
	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": uid}, update)
	return err
}

// Админская настройка принудительного получателя. Отсутствие документа - не ошибка
func (m *MemberDB) GetForceReceiver(ctx context.Context) (models.ForceReceiver, error) {
	var force models.ForceReceiver
	err := m.settings.FindOne(ctx, bson.M{"_id": forceReceiverDoc}).Decode(&force)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ForceReceiver{}, nil
		}
		return models.ForceReceiver{}, err
	}
	return force, nil
}

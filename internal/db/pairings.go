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

type PairingDB struct {
	mgo     *mongo.Client
	send    *mongo.Collection // исходящие обязательства (sendHelp)
	receive *mongo.Collection // входящие (receiveHelp)
}

func NewPairingDB() (*PairingDB, error) {
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
	p := &PairingDB{client, db.Collection("sendhelp"), db.Collection("receivehelp")}

	err = p.ensureIndexes(ctx)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Уникальный индекс (senderuid, receiveruid) - атомарный запрет повторной пары
func (p *PairingDB) ensureIndexes(ctx context.Context) error {
	_, err := p.send.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "senderuid", Value: 1}, {Key: "receiveruid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = p.receive.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "receiverid", Value: 1}, {Key: "status", Value: 1}},
	})
	return err
}

// Обе проекции в одной транзакции: либо создаются обе, либо ни одной
func (p *PairingDB) CreatePairing(ctx context.Context, pairing models.HelpPairing) error {
	sess, err := p.mgo.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := p.send.InsertOne(sc, pairing)
		if err != nil {
			return nil, err
		}
		_, err = p.receive.InsertOne(sc, pairing)
		return nil, err
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicatePair
		}
		return err
	}
	return nil
}

func (p *PairingDB) GetBySender(ctx context.Context, senderUID string) ([]models.HelpPairing, error) {
	return p.query(ctx, p.send, bson.M{"senderuid": senderUID})
}

func (p *PairingDB) GetByReceiver(ctx context.Context, receiverUID string) ([]models.HelpPairing, error) {
	return p.query(ctx, p.receive, bson.M{"receiveruid": receiverUID})
}

func (p *PairingDB) query(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]models.HelpPairing, error) {
	result, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var pairings []models.HelpPairing
	for result.Next(ctx) {
		var pairing models.HelpPairing
		err := result.Decode(&pairing)
		if err != nil {
			return nil, err
		}
		pairings = append(pairings, pairing)
	}
	return pairings, nil
}

func (p *PairingDB) ExistsPair(ctx context.Context, senderUID string, receiverUID string) (bool, error) {
	count, err := p.send.CountDocuments(ctx, bson.M{"senderuid": senderUID, "receiveruid": receiverUID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *PairingDB) CountConfirmedByReceiver(ctx context.Context, receiverID string) (int, error) {
	count, err := p.receive.CountDocuments(ctx, bson.M{"receiverid": receiverID, "confirmedbyreceiver": true})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Подтверждение получателем: статус и время на обеих проекциях
func (p *PairingDB) Confirm(ctx context.Context, docID string) (models.HelpPairing, error) {
	now := time.Now()
	set := bson.M{
		"status":              models.StatusConfirmed,
		"confirmedbyreceiver": true,
		"confirmationtime":    now,
		"updatedat":           now,
	}
	return p.finalize(ctx, docID, set)
}

func (p *PairingDB) Reject(ctx context.Context, docID string) (models.HelpPairing, error) {
	set := bson.M{
		"status":    models.StatusRejected,
		"updatedat": time.Now(),
	}
	return p.finalize(ctx, docID, set)
}

func (p *PairingDB) finalize(ctx context.Context, docID string, set bson.M) (models.HelpPairing, error) {
	var pairing models.HelpPairing

	sess, err := p.mgo.StartSession()
	if err != nil {
		return pairing, err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"_id": docID, "status": models.StatusPending}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := p.send.FindOneAndUpdate(sc, filter, bson.M{"$set": set}, opts).Decode(&pairing)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fmt.Errorf("pending pairing %s: %w", docID, models.ErrNotFound)
			}
			return nil, err
		}
		_, err = p.receive.UpdateOne(sc, bson.M{"_id": docID}, bson.M{"$set": set})
		return nil, err
	})
	if err != nil {
		return models.HelpPairing{}, err
	}
	return pairing, nil
}

// Удаление pending-пар сверх лимита: старейшие max остаются, из остальных
// удаляются только пары без пруфа оплаты
func (p *PairingDB) DeletePendingOverCap(ctx context.Context, receiverID string, max int) ([]models.HelpPairing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: 1}})
	result, err := p.receive.Find(ctx, bson.M{"receiverid": receiverID, "status": models.StatusPending}, opts)
	if err != nil {
		return nil, err
	}
	var pending []models.HelpPairing
	for result.Next(ctx) {
		var pairing models.HelpPairing
		err := result.Decode(&pairing)
		if err != nil {
			return nil, err
		}
		pending = append(pending, pairing)
	}
	if len(pending) <= max {
		return nil, nil
	}

	var deleted []models.HelpPairing
	for _, pairing := range pending[max:] {
		if pairing.PaymentDetails.ScreenshotURL != "" {
			continue
		}
		err := p.delete(ctx, pairing.DocID)
		if err != nil {
			return deleted, err
		}
		deleted = append(deleted, pairing)
	}
	return deleted, nil
}

func (p *PairingDB) delete(ctx context.Context, docID string) error {
	sess, err := p.mgo.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := p.send.DeleteOne(sc, bson.M{"_id": docID})
		if err != nil {
			return nil, err
		}
		_, err = p.receive.DeleteOne(sc, bson.M{"_id": docID})
		return nil, err
	})
	return err
}

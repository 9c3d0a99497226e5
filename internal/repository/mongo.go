package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aura/internal/domain"
)

// Connect открывает соединение с Mongo и проверяет его пингом
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// документы хранятся с ObjectID; доменные типы используют hex-строку
type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       int64              `bson:"price"`
	Description string             `bson:"description"`
	Category    domain.Category    `bson:"category"`
	Sizes       []string           `bson:"sizes"`
	Colors      []string           `bson:"colors"`
	Images      []string           `bson:"images"`
	Featured    bool               `bson:"featured,omitempty"`
	Popularity  int64              `bson:"popularity,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d productDoc) domain() domain.Product {
	return domain.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		Sizes:       d.Sizes,
		Colors:      d.Colors,
		Images:      d.Images,
		Featured:    d.Featured,
		Popularity:  d.Popularity,
		CreatedAt:   d.CreatedAt,
	}
}

type orderDoc struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	CustomerInfo domain.CustomerInfo `bson:"customerInfo"`
	Items        string              `bson:"items"`
	Total        int64               `bson:"total"`
	Status       domain.OrderStatus  `bson:"status"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

func (d orderDoc) domain() domain.Order {
	return domain.Order{
		ID:           d.ID.Hex(),
		CustomerInfo: d.CustomerInfo,
		Items:        d.Items,
		Total:        d.Total,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// MongoProducts репозиторий товаров над коллекцией products
type MongoProducts struct{ coll *mongo.Collection }

func NewMongoProducts(db *mongo.Database) *MongoProducts {
	return &MongoProducts{coll: db.Collection("products")}
}

var _ ProductRepository = (*MongoProducts)(nil)

func (r *MongoProducts) Create(ctx context.Context, p *domain.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	doc := productDoc{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Images:      p.Images,
		Featured:    p.Featured,
		Popularity:  p.Popularity,
		CreatedAt:   p.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MongoProducts) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc productDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := doc.domain()
	return &p, nil
}

func (r *MongoProducts) Update(ctx context.Context, p *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"price":       p.Price,
		"description": p.Description,
		"category":    p.Category,
		"sizes":       p.Sizes,
		"colors":      p.Colors,
		"images":      p.Images,
		"featured":    p.Featured,
		"popularity":  p.Popularity,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProducts) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProducts) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.FeaturedOnly {
		filter["featured"] = true
	}
	sortKey := bson.D{{Key: "createdAt", Value: -1}}
	if f.Sort == SortPopularity {
		sortKey = bson.D{{Key: "popularity", Value: -1}}
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sortKey))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := make([]domain.Product, 0)
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.domain())
	}
	return out, cur.Err()
}

// MongoOrders репозиторий заказов над коллекцией orders
type MongoOrders struct{ coll *mongo.Collection }

func NewMongoOrders(db *mongo.Database) *MongoOrders {
	return &MongoOrders{coll: db.Collection("orders")}
}

var _ OrderRepository = (*MongoOrders)(nil)

func (r *MongoOrders) Create(ctx context.Context, o *domain.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	doc := orderDoc{
		CustomerInfo: o.CustomerInfo,
		Items:        o.Items,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *MongoOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var doc orderDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o := doc.domain()
	return &o, nil
}

func (r *MongoOrders) Update(ctx context.Context, o *domain.Order) error {
	oid, err := primitive.ObjectIDFromHex(o.ID)
	if err != nil {
		return ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"customerInfo": o.CustomerInfo,
		"items":        o.Items,
		"total":        o.Total,
		"status":       o.Status,
		"updatedAt":    o.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoOrders) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoOrders) List(ctx context.Context) ([]domain.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := make([]domain.Order, 0)
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.domain())
	}
	return out, cur.Err()
}

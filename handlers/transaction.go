package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakex/StakeX/config"
	"github.com/stakex/StakeX/helpers"
	"github.com/stakex/StakeX/models"
)

func transactionCollection(client *mongo.Client) *mongo.Collection {
	return client.Database(config.DatabaseName).Collection("transactions")
}

func respondStoreUnavailable(w http.ResponseWriter, err error) {
	config.Logger.Error(fmt.Sprintf("mongo connect failed: %v", err))
	helpers.RespondMessage(w, http.StatusServiceUnavailable, "Service Unavailable")
}

func respondServerError(w http.ResponseWriter, err error) {
	config.Logger.Error(fmt.Sprintf("store error: %v", err))
	helpers.RespondMessage(w, http.StatusInternalServerError, "Server Error")
}

// GetTransactions lists a page of transactions. Filters, sort and
// pagination all come from the query string; any invalid parameter
// fails the whole request with the full list of violations.
func GetTransactions(w http.ResponseWriter, r *http.Request) {
	query, errs := helpers.ParseTransactionQuery(r.URL.Query())
	if errs != nil {
		helpers.RespondFieldErrors(w, errs)
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	filter := query.Filter()
	collection := transactionCollection(client)

	opts := helpers.NewMongoPaginate(query.Limit, query.Page, query.Sort()).BuildFindOptions()
	cursor, err := collection.Find(context.Background(), filter, opts)
	if err != nil {
		respondServerError(w, err)
		return
	}
	defer cursor.Close(context.Background())

	transactions := []models.Transaction{}
	if err = cursor.All(context.Background(), &transactions); err != nil {
		respondServerError(w, err)
		return
	}

	// Count over the same filter, ignoring pagination.
	total, err := collection.CountDocuments(context.Background(), filter)
	if err != nil {
		respondServerError(w, err)
		return
	}

	response := struct {
		Data        []models.Transaction `json:"data"`
		Total       int64                `json:"total"`
		CurrentPage int64                `json:"currentPage"`
		TotalPages  int64                `json:"totalPages"`
	}{
		Data:        transactions,
		Total:       total,
		CurrentPage: query.Page,
		TotalPages:  helpers.TotalPages(total, query.Limit),
	}

	helpers.RespondJSON(w, http.StatusOK, response)
}

func GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	var transaction models.Transaction
	err = transactionCollection(client).FindOne(context.Background(), bson.M{"_id": id}).Decode(&transaction)
	if err == mongo.ErrNoDocuments {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	helpers.RespondJSON(w, http.StatusOK, transaction)
}

func CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction models.Transaction

	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "Invalid request body"}})
		return
	}

	if errs := helpers.ValidateStruct(&transaction); errs != nil {
		helpers.RespondFieldErrors(w, errs)
		return
	}

	transaction.ID = primitive.NilObjectID
	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}
	if transaction.Status == "" {
		transaction.Status = models.StatusWaiting
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	result, err := transactionCollection(client).InsertOne(context.Background(), transaction)
	if err != nil {
		respondServerError(w, err)
		return
	}

	transaction.ID = result.InsertedID.(primitive.ObjectID)

	helpers.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction merges the supplied fields onto the stored record
// and returns the record as it stands after the update.
func UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var update models.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "Invalid request body"}})
		return
	}

	if errs := helpers.ValidateStruct(&update); errs != nil {
		helpers.RespondFieldErrors(w, errs)
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	collection := transactionCollection(client)

	var transaction models.Transaction
	set := update.SetFields()
	if len(set) == 0 {
		// Nothing to merge, return the record as is.
		err = collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&transaction)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = collection.FindOneAndUpdate(context.Background(), bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&transaction)
	}

	if err == mongo.ErrNoDocuments {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	helpers.RespondJSON(w, http.StatusOK, transaction)
}

func DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	err = transactionCollection(client).FindOneAndDelete(context.Background(), bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		helpers.RespondMessage(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	helpers.RespondMessage(w, http.StatusOK, "Transaction deleted")
}

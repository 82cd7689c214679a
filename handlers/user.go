package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	cont "github.com/gorilla/context"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakex/StakeX/config"
	"github.com/stakex/StakeX/helpers"
	"github.com/stakex/StakeX/models"
	"github.com/stakex/StakeX/utils"
)

func userCollection(client *mongo.Client) *mongo.Collection {
	return client.Database(config.DatabaseName).Collection("users")
}

// GetUserFromContext resolves the user behind the JWT claims the auth
// middleware stored on the request.
func GetUserFromContext(client *mongo.Client, userContext interface{}) (models.User, error) {
	var userDB models.User

	if userContext == nil {
		return userDB, fmt.Errorf("Unauthorized")
	}

	userClaims, ok := userContext.(jwt.MapClaims)
	if !ok {
		return userDB, fmt.Errorf("Invalid user context")
	}

	userIDStr, ok := userClaims["user_id"].(string)
	if !ok {
		return userDB, fmt.Errorf("Invalid user ID")
	}

	objectID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return userDB, fmt.Errorf("Invalid user ID")
	}

	if err := userCollection(client).FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&userDB); err != nil {
		return userDB, fmt.Errorf("No user found")
	}

	return userDB, nil
}

func RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "Invalid request body"}})
		return
	}

	if errs := helpers.ValidateStruct(&user); errs != nil {
		helpers.RespondFieldErrors(w, errs)
		return
	}

	encryptedPassword, err := helpers.Encrypt(user.Password)

	if err != nil {
		respondServerError(w, err)
		return
	}

	user.Password = encryptedPassword

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	result, err := userCollection(client).InsertOne(context.Background(), user)
	if mongo.IsDuplicateKeyError(err) {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "email", Msg: "email is already registered"}})
		return
	}
	if err != nil {
		respondServerError(w, err)
		return
	}

	userID := result.InsertedID.(primitive.ObjectID)

	token, err := utils.GenerateToken(userID.Hex())
	if err != nil {
		respondServerError(w, err)
		return
	}

	response := struct {
		InsertedID interface{} `json:"insertedId"`
		Token      string      `json:"token"`
	}{
		InsertedID: result.InsertedID,
		Token:      token,
	}

	helpers.RespondJSON(w, http.StatusCreated, response)
}

func Login(w http.ResponseWriter, r *http.Request) {
	var user models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "Invalid request body"}})
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	var userDB models.User
	if err := userCollection(client).FindOne(context.Background(), bson.M{"email": user.Email}).Decode(&userDB); err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "No user found")
		return
	}

	password, err := helpers.Encrypt(user.Password)
	if err != nil {
		respondServerError(w, err)
		return
	}

	if userDB.Password != password {
		helpers.RespondMessage(w, http.StatusUnauthorized, "Password does not match")
		return
	}

	token, err := utils.GenerateToken(userDB.ID.Hex())
	if err != nil {
		respondServerError(w, err)
		return
	}

	userDB.Password = ""

	response := struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}{
		User:  userDB,
		Token: token,
	}

	helpers.RespondJSON(w, http.StatusOK, response)
}

func GetUserDetails(w http.ResponseWriter, r *http.Request) {
	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	userDB, err := GetUserFromContext(client, cont.Get(r, "user"))
	if err != nil {
		helpers.RespondMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	response := struct {
		Status string `json:"status"`
		Name   string `json:"username"`
		Email  string `json:"email"`
	}{
		Status: "success",
		Name:   userDB.Name,
		Email:  userDB.Email,
	}

	helpers.RespondJSON(w, http.StatusOK, response)
}

func UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	var updatedUser models.User
	if err := json.NewDecoder(r.Body).Decode(&updatedUser); err != nil {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "Invalid request body"}})
		return
	}

	if updatedUser.Password != "" {
		encrypted, err := helpers.Encrypt(updatedUser.Password)
		if err != nil {
			respondServerError(w, err)
			return
		}
		updatedUser.Password = encrypted
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	set := bson.M{}
	if updatedUser.Name != "" {
		set["name"] = updatedUser.Name
	}
	if updatedUser.Email != "" {
		set["email"] = updatedUser.Email
	}
	if updatedUser.Password != "" {
		set["password"] = updatedUser.Password
	}

	if len(set) == 0 {
		helpers.RespondFieldErrors(w, []helpers.FieldError{{Field: "body", Msg: "No fields to update"}})
		return
	}

	result, err := userCollection(client).UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		respondServerError(w, err)
		return
	}

	if result.MatchedCount == 0 {
		helpers.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	helpers.RespondMessage(w, http.StatusOK, "User updated")
}

func DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		helpers.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	client, err := config.ConnectToMongo()
	if err != nil {
		respondStoreUnavailable(w, err)
		return
	}
	defer client.Disconnect(context.Background())

	result, err := userCollection(client).DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		respondServerError(w, err)
		return
	}

	if result.DeletedCount == 0 {
		helpers.RespondMessage(w, http.StatusNotFound, "User not found")
		return
	}

	helpers.RespondMessage(w, http.StatusOK, "User deleted")
}

// Package docs PetBazaar API.
//
// Documentation of the PetBazaar API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/petbazaar/petbazaar-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/users users listUsers
// Lists every user with id, name and email only.
// responses:
//   200: usersResponse
//   500: errorResponse

// swagger:response usersResponse
type usersResponseWrapper struct {
	// in:body
	Body []models.UserSummary
}

// swagger:route GET /api/users/{id} users userByID
// Gets a user's name, email and the pets they list.
// responses:
//   200: userWithPetsResponse
//   400: errorResponse
//   404: errorResponse

// swagger:response userWithPetsResponse
type userWithPetsResponseWrapper struct {
	// in:body
	Body models.UserWithPets
}

// swagger:route GET /api/users/{id}/notifications notifications userNotifications
// Lists the notifications of a user in the order they were sent.
// responses:
//   200: notificationsResponse
//   404: errorResponse

// swagger:response notificationsResponse
type notificationsResponseWrapper struct {
	// in:body
	Body []models.Notification
}

// swagger:route GET /api/chats/{id} chats chatByID
// Gets a chat and its messages.
// responses:
//   200: chatResponse
//   404: errorResponse

// swagger:response chatResponse
type chatResponseWrapper struct {
	// in:body
	Body models.Chat
}

// swagger:route GET /api/groups/{id} groups groupByID
// Gets a group and its messages, oldest first.
// responses:
//   200: groupResponse
//   404: errorResponse

// swagger:response groupResponse
type groupResponseWrapper struct {
	// in:body
	Body models.GroupWithMessages
}

// Every failure carries a human readable message.
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.MessageResponse
}

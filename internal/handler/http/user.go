package http

import (
	"net/http"

	"github.com/fasthr/hr-backend-go/internal/domain/user"
	"github.com/fasthr/hr-backend-go/internal/handler/http/response"
	userService "github.com/fasthr/hr-backend-go/internal/service/user"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService userService.UserService
}

func NewUserHandler(userService userService.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := newQueryFilter(r)
	req := user.ListUsersRequest{
		Role:   query.String("role"),
		Status: query.Bool("status"),
	}
	if err := query.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.userService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "Users list.", response.NewItems(results))
}

func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created.", map[string]interface{}{"user": result})
}

func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}

	result, err := h.userService.Get(r.Context(), p, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "User details.", map[string]interface{}{"user": result})
}

func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	result, err := h.userService.Update(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "User updated.", map[string]interface{}{"user": result})
}

func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, "User deleted.", nil)
}

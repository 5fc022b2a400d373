package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pesocalumpit/portal-web/internal/models"
)

func (c *Client) GetUser(ctx context.Context, token string, userID int) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.getJSON(ctx, fmt.Sprintf("/user/%d", userID), token, &out)
	return out, err
}

type UpdateUserRequest struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
}

// UpdateUser saves profile edits. Email is immutable post-registration
// and deliberately absent from the request shape.
func (c *Client) UpdateUser(ctx context.Context, token string, userID int, req UpdateUserRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/user/%d", userID), token, req, nil)
}

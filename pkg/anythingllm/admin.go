package anythingllm

import (
	"context"
	"errors"
	"fmt"
)

// apiResult is the {success, error} envelope of admin endpoints.
type apiResult struct {
	Success *bool   `json:"success"`
	Error   *string `json:"error"`
}

func (r apiResult) failure() string {
	if r.Error != nil && *r.Error != "" {
		return *r.Error
	}
	if r.Success != nil && !*r.Success {
		return "request was not successful"
	}
	return ""
}

// CheckAuth verifies the API key sent with the call.
func (c *clientImpl) CheckAuth(ctx context.Context, opts ...CallOption) error {
	resp, err := c.Get(ctx, PathAuth, opts...)
	if err != nil {
		return err
	}
	var out struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := resp.Decode(&out); err != nil {
		return err
	}
	if !out.Authenticated {
		return &Error{Kind: KindAuthentication, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: errors.New("api key rejected")}
	}
	return nil
}

// RequestToken exchanges username and password for a session token.
func (c *clientImpl) RequestToken(ctx context.Context, creds Credentials, opts ...CallOption) (string, error) {
	resp, err := c.Post(ctx, PathRequestToken, creds, opts...)
	if err != nil {
		return "", err
	}
	var out struct {
		Valid   bool   `json:"valid"`
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	if !out.Valid || out.Token == "" {
		msg := out.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return "", &Error{Kind: KindAuthentication, StatusCode: resp.StatusCode, Body: string(resp.Body), Err: errors.New(msg)}
	}
	return out.Token, nil
}

// GenerateAPIKey creates a new instance API key and returns its secret.
// It needs an admin session token, usually passed with WithAuthToken.
func (c *clientImpl) GenerateAPIKey(ctx context.Context, opts ...CallOption) (string, error) {
	resp, err := c.Post(ctx, PathGenerateAPIKey, nil, opts...)
	if err != nil {
		return "", err
	}
	var out struct {
		APIKey *struct {
			ID     int    `json:"id"`
			Secret string `json:"secret"`
		} `json:"apiKey"`
		apiResult
	}
	if err := resp.Decode(&out); err != nil {
		return "", err
	}
	if msg := out.failure(); msg != "" {
		return "", rejected(resp, msg)
	}
	if out.APIKey == nil || out.APIKey.Secret == "" {
		return "", malformed(resp, "apiKey.secret")
	}
	return out.APIKey.Secret, nil
}

func (c *clientImpl) ListUsers(ctx context.Context, opts ...CallOption) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.getJSON(ctx, PathAdminUsers, &out, opts); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *clientImpl) CreateUser(ctx context.Context, in NewUser, opts ...CallOption) (*User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, &Error{Kind: KindValidation, Err: errors.New("username and password are required")}
	}
	resp, err := c.Post(ctx, PathAdminUserNew, in, opts...)
	if err != nil {
		return nil, err
	}
	var out struct {
		User *User `json:"user"`
		apiResult
	}
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if msg := out.failure(); msg != "" {
		return nil, rejected(resp, msg)
	}
	if out.User == nil || out.User.ID == 0 {
		return nil, malformed(resp, "user.id")
	}
	return out.User, nil
}

func (c *clientImpl) UpdateUser(ctx context.Context, id int, in UserUpdate, opts ...CallOption) error {
	if id <= 0 {
		return &Error{Kind: KindValidation, Err: fmt.Errorf("invalid user id %d", id)}
	}
	resp, err := c.Post(ctx, fmt.Sprintf(PathAdminUser, id), in, opts...)
	if err != nil {
		return err
	}
	var out apiResult
	if err := resp.Decode(&out); err != nil {
		return err
	}
	if msg := out.failure(); msg != "" {
		return rejected(resp, msg)
	}
	return nil
}

func (c *clientImpl) DeleteUser(ctx context.Context, id int, opts ...CallOption) error {
	if id <= 0 {
		return &Error{Kind: KindValidation, Err: fmt.Errorf("invalid user id %d", id)}
	}
	resp, err := c.Delete(ctx, fmt.Sprintf(PathAdminUser, id), opts...)
	if err != nil {
		return err
	}
	var out apiResult
	if err := resp.Decode(&out); err != nil {
		return err
	}
	if msg := out.failure(); msg != "" {
		return rejected(resp, msg)
	}
	return nil
}

// IssueAuthToken issues a one-time SSO token for the user. LoginPath is
// filled with the default simple SSO path when the server omits it.
func (c *clientImpl) IssueAuthToken(ctx context.Context, userID int, opts ...CallOption) (*AuthToken, error) {
	if userID <= 0 {
		return nil, &Error{Kind: KindValidation, Err: fmt.Errorf("invalid user id %d", userID)}
	}
	resp, err := c.Get(ctx, fmt.Sprintf(PathIssueAuthToken, userID), opts...)
	if err != nil {
		return nil, err
	}
	var out AuthToken
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, malformed(resp, "token")
	}
	if out.LoginPath == "" {
		out.LoginPath = DefaultSSOLoginPath + out.Token
	}
	return &out, nil
}

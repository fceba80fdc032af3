package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lnrs-platform/adminconsole/internal/exam"
)

// questionList tolerates both answer shapes the backend has shipped for
// GET /questions: a {success,data} envelope or a bare JSON array.
type questionList struct {
	Success *bool
	Message string
	Items   []exam.Question
}

func (l *questionList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &l.Items)
	}
	var env struct {
		Success *bool           `json:"success"`
		Message string          `json:"message"`
		Data    []exam.Question `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	l.Success, l.Message, l.Items = env.Success, env.Message, env.Data
	return nil
}

// questionBody does the same for a single question: envelope or bare object.
type questionBody struct {
	Success *bool
	Message string
	Item    exam.Question
}

func (qb *questionBody) UnmarshalJSON(b []byte) error {
	var env struct {
		Success *bool          `json:"success"`
		Message string         `json:"message"`
		Data    *exam.Question `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err == nil && (env.Success != nil || env.Data != nil) {
		qb.Success, qb.Message = env.Success, env.Message
		if env.Data != nil {
			qb.Item = *env.Data
		}
		return nil
	}
	return json.Unmarshal(b, &qb.Item)
}

func rejected(success *bool, message, fallback string) error {
	if success != nil && !*success {
		if message == "" {
			message = fallback
		}
		return errors.New(message)
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates a user account and returns the server's representation.
func (c *Client) Register(ctx context.Context, name, email, password string, role exam.Role) (exam.User, error) {
	if role == "" {
		role = exam.RoleUser
	}
	in := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	var u exam.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &u); err != nil {
		return exam.User{}, err
	}
	return u, nil
}

// ListQuestions fetches one catalog page. page is 1-based.
func (c *Client) ListQuestions(ctx context.Context, page, limit int) ([]exam.Question, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out questionList
	if err := c.do(ctx, http.MethodGet, "/questions", q, nil, &out); err != nil {
		return nil, err
	}
	if err := rejected(out.Success, out.Message, "failed to fetch questions"); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateQuestion(ctx context.Context, q exam.Question) (exam.Question, error) {
	var out questionBody
	if err := c.do(ctx, http.MethodPost, "/questions/", nil, q, &out); err != nil {
		return exam.Question{}, err
	}
	if err := rejected(out.Success, out.Message, "failed to add question"); err != nil {
		return exam.Question{}, err
	}
	return out.Item, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, q exam.Question) (exam.Question, error) {
	var out questionBody
	if err := c.do(ctx, http.MethodPut, "/questions/"+q.ID, nil, q, &out); err != nil {
		return exam.Question{}, err
	}
	if err := rejected(out.Success, out.Message, "failed to update question"); err != nil {
		return exam.Question{}, err
	}
	return out.Item, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/questions/"+id, nil, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]exam.User, error) {
	var out struct {
		Users []exam.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil, nil)
}

func (c *Client) ListExams(ctx context.Context) ([]exam.Submission, error) {
	var out struct {
		Exams []exam.Submission `json:"exams"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/exams", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Exams, nil
}

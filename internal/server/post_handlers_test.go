package server

import (
	"net/http"
	"testing"

	"kehilla/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(m *testMocks)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			body: map[string]string{"content": "Thoughts on this week's parsha", "category": models.CategoryTorah},
			mockSetup: func(m *testMocks) {
				m.posts.On("Create", mock.Anything, mock.Anything).Return(nil)
				m.users.On("GetByID", mock.Anything, uint(1)).
					Return(&models.User{ID: 1, Name: "Rav Berger"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Fields",
			body:           map[string]string{"content": ""},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Content and category are required",
		},
		{
			name:           "Invalid Category",
			body:           map[string]string{"content": "hello", "category": "sports"},
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestServer()
			tt.mockSetup(m)

			app := authApp(1)
			app.Post("/posts", s.CreatePost)

			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedError != "" {
				body := decodeBody(t, resp)
				assert.Equal(t, tt.expectedError, body["error"])
			}
			m.posts.AssertExpectations(t)
		})
	}
}

func TestGetFeed(t *testing.T) {
	s, m := newTestServer()
	m.posts.On("ListFeed", mock.Anything, uint(0), 100, 0).
		Return([]*models.Post{{ID: 1, Content: "first"}}, nil)

	app := authApp(0)
	app.Get("/posts", s.GetFeed)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.posts.AssertExpectations(t)
}

func TestGetUserPosts_UnknownAuthor(t *testing.T) {
	s, m := newTestServer()
	m.users.On("GetByID", mock.Anything, uint(42)).
		Return(nil, models.NewNotFoundError("User"))

	app := authApp(0)
	app.Get("/users/:id/posts", s.GetUserPosts)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/users/42/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "User not found", body["error"])
}

func TestToggleLike(t *testing.T) {
	t.Run("Like", func(t *testing.T) {
		s, m := newTestServer()
		m.posts.On("GetByID", mock.Anything, uint(10)).Return(&models.Post{ID: 10}, nil)
		m.posts.On("ToggleLike", mock.Anything, uint(1), uint(10)).Return(true, nil)

		app := authApp(1)
		app.Post("/posts/:id/like", s.ToggleLike)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/10/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["liked"])
		m.posts.AssertExpectations(t)
	})

	t.Run("Post Not Found", func(t *testing.T) {
		s, m := newTestServer()
		m.posts.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Post"))

		app := authApp(1)
		app.Post("/posts/:id/like", s.ToggleLike)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/99/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Post not found", body["error"])
	})

	t.Run("Invalid ID", func(t *testing.T) {
		s, _ := newTestServer()

		app := authApp(1)
		app.Post("/posts/:id/like", s.ToggleLike)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/abc/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateComment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, m := newTestServer()
		m.posts.On("GetByID", mock.Anything, uint(10)).Return(&models.Post{ID: 10}, nil)
		m.comments.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Comment).ID = 5
			}).Return(nil)
		m.comments.On("GetByID", mock.Anything, uint(5)).
			Return(&models.Comment{ID: 5, PostID: 10, UserID: 1, Content: "yasher koach"}, nil)

		app := authApp(1)
		app.Post("/posts/:id/comments", s.CreateComment)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/10/comments",
			map[string]string{"content": "yasher koach"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		m.comments.AssertExpectations(t)
	})

	t.Run("Missing Content", func(t *testing.T) {
		s, _ := newTestServer()

		app := authApp(1)
		app.Post("/posts/:id/comments", s.CreateComment)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/10/comments",
			map[string]string{"content": "   "}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Content is required", body["error"])
	})

	t.Run("Post Not Found", func(t *testing.T) {
		s, m := newTestServer()
		m.posts.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Post"))

		app := authApp(1)
		app.Post("/posts/:id/comments", s.CreateComment)

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/posts/99/comments",
			map[string]string{"content": "hello"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

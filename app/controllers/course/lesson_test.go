package courses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dpak1999/cognitionis-server/app/models"
	"github.com/dpak1999/cognitionis-server/app/queries"
	"github.com/dpak1999/cognitionis-server/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func resetCourseStores(t *testing.T) {
	t.Cleanup(func() {
		getCourseBySlug = queries.GetCourseQueueBySlug
		getCourseByID = queries.GetCourseQueueByID
		addLesson = queries.AddLessonQueue
		updateLesson = queries.UpdateLessonQueue
		removeLesson = queries.RemoveLessonQueue
	})
}

func performLessonUpdate(t *testing.T, userID uint64, slug, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/:slug", func(c *gin.Context) { c.Set("userID", userID) }, UpdateLesson)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/"+slug, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateLessonReturnsStoredCourse(t *testing.T) {
	resetCourseStores(t)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := models.Course{
		ID:           200,
		Name:         "Go Basics",
		Slug:         "go-basics",
		InstructorID: 100,
		Lessons: []models.Lesson{
			{ID: 300, Title: "Old title", Slug: "old-title", CreatedAt: created, UpdatedAt: created},
		},
	}
	getCourseBySlug = func(slug string) (models.Course, error) { return stored, nil }
	getCourseByID = func(id uint64) (models.Course, error) { return stored, nil }
	updateLesson = func(courseID uint64, lesson models.Lesson) (*mongo.UpdateResult, error) {
		l := &stored.Lessons[0]
		l.Title = lesson.Title
		l.Slug = lesson.Slug
		l.Content = lesson.Content
		l.UpdatedAt = time.Now()
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	w := performLessonUpdate(t, 100, "go-basics", `{"id":300,"title":"New title"}`)
	require.Equal(t, 200, w.Code)

	var resp struct {
		Data models.Course `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Lessons, 1)

	// Response reflects the stored lesson, original timestamps included
	assert.Equal(t, "New title", resp.Data.Lessons[0].Title)
	assert.True(t, resp.Data.Lessons[0].CreatedAt.Equal(created))
	assert.False(t, resp.Data.Lessons[0].UpdatedAt.IsZero())
}

func TestUpdateLessonUnknownID(t *testing.T) {
	resetCourseStores(t)

	getCourseBySlug = func(slug string) (models.Course, error) {
		return models.Course{ID: 200, Slug: "go-basics", InstructorID: 100}, nil
	}
	updated := false
	updateLesson = func(courseID uint64, lesson models.Lesson) (*mongo.UpdateResult, error) {
		updated = true
		return &mongo.UpdateResult{}, nil
	}

	w := performLessonUpdate(t, 100, "go-basics", `{"id":999,"title":"New title"}`)

	var resp struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, utils.ErrLessonNotExist, resp.ErrorCode)
	assert.False(t, updated)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/proroofers/crm-api/internal/constants"
	"github.com/proroofers/crm-api/internal/database"
	"github.com/proroofers/crm-api/internal/models"
	"github.com/proroofers/crm-api/internal/repository"
	"github.com/proroofers/crm-api/internal/services"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Project{},
		&models.WorkTask{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewTaskHandler(services.NewTaskService(taskRepo, userRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// routerAs builds the task routes with the given caller already
// authenticated.
func (suite *TaskHandlerTestSuite) routerAs(userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	})
	r.GET("/tasks", suite.handler.ListTasks)
	r.POST("/tasks", suite.handler.CreateTask)
	r.GET("/tasks/:id", suite.handler.GetTask)
	r.PUT("/tasks/:id", suite.handler.UpdateTask)
	r.DELETE("/tasks/:id", suite.handler.DeleteTask)
	return r
}

func (suite *TaskHandlerTestSuite) createTestUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@x.com",
		PasswordHash: "hashedpassword",
		Role:         role,
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, assignedToID, createdByID uint64) *models.WorkTask {
	task := &models.WorkTask{
		Title:        title,
		Status:       models.TaskStatusPending,
		Priority:     models.TaskPriorityMedium,
		AssignedToID: assignedToID,
		CreatedByID:  createdByID,
		CreatedAt:    time.Now().UTC(),
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) do(r *gin.Engine, method, url string, payload any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) updatePayload(assignedToID uint64) map[string]any {
	return map[string]any{
		"title":          "Replaced title",
		"description":    "replaced",
		"priority":       "HIGH",
		"status":         "IN_PROGRESS",
		"assigned_to_id": assignedToID,
	}
}

func (suite *TaskHandlerTestSuite) TestCreateTaskStampsCreator() {
	creator := suite.createTestUser("creator", models.RoleStaff)
	assignee := suite.createTestUser("assignee", models.RoleStaff)
	r := suite.routerAs(creator.ID)

	w := suite.do(r, http.MethodPost, "/tasks", map[string]any{
		"title":          "Inspect chimney flashing",
		"priority":       "URGENT",
		"assigned_to_id": assignee.ID,
	})

	suite.Equal(http.StatusCreated, w.Code)

	var created models.WorkTask
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal(creator.ID, created.CreatedByID)
	suite.Equal(assignee.ID, created.AssignedToID)
	suite.Equal(models.TaskStatusPending, created.Status)
	suite.False(created.CreatedAt.IsZero())
}

func (suite *TaskHandlerTestSuite) TestCreateTaskUnknownAssignee() {
	creator := suite.createTestUser("creator", models.RoleStaff)
	r := suite.routerAs(creator.ID)

	w := suite.do(r, http.MethodPost, "/tasks", map[string]any{
		"title":          "Orphan task",
		"assigned_to_id": 9999,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskStaffForbiddenOnOthers() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	other := suite.createTestUser("other", models.RoleStaff)
	task := suite.createTestTask("Tear-off old shingles", other.ID, staff.ID)

	r := suite.routerAs(staff.ID)
	w := suite.do(r, http.MethodPut, "/tasks/"+itoa(task.ID), suite.updatePayload(other.ID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskStaffOwnTask() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	task := suite.createTestTask("Order materials", staff.ID, staff.ID)

	r := suite.routerAs(staff.ID)
	w := suite.do(r, http.MethodPut, "/tasks/"+itoa(task.ID), suite.updatePayload(staff.ID))

	suite.Equal(http.StatusNoContent, w.Code)

	var updated models.WorkTask
	suite.Require().NoError(suite.db.First(&updated, task.ID).Error)
	suite.Equal("Replaced title", updated.Title)
	suite.Equal(models.TaskStatusInProgress, updated.Status)
	suite.Equal(models.TaskPriorityHigh, updated.Priority)
	suite.WithinDuration(task.CreatedAt, updated.CreatedAt, time.Second)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskAdminUnrestricted() {
	admin := suite.createTestUser("admin", models.RoleAdmin)
	staff := suite.createTestUser("staff", models.RoleStaff)
	task := suite.createTestTask("Final walkthrough", staff.ID, staff.ID)

	r := suite.routerAs(admin.ID)
	w := suite.do(r, http.MethodPut, "/tasks/"+itoa(task.ID), suite.updatePayload(staff.ID))

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskRoleIsReadFreshFromStorage() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	other := suite.createTestUser("other", models.RoleStaff)
	task := suite.createTestTask("Gutter install", other.ID, other.ID)

	r := suite.routerAs(staff.ID)
	w := suite.do(r, http.MethodPut, "/tasks/"+itoa(task.ID), suite.updatePayload(other.ID))
	suite.Equal(http.StatusForbidden, w.Code)

	// A role change takes effect on the next request; no new token needed.
	suite.Require().NoError(suite.db.Model(&models.User{}).
		Where("id = ?", staff.ID).
		Update("role", models.RoleAdmin).Error)

	w = suite.do(r, http.MethodPut, "/tasks/"+itoa(task.ID), suite.updatePayload(other.ID))
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskNotFound() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	r := suite.routerAs(staff.ID)

	w := suite.do(r, http.MethodPut, "/tasks/9999", suite.updatePayload(staff.ID))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTaskStaffForbiddenOnOthers() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	other := suite.createTestUser("other", models.RoleStaff)
	task := suite.createTestTask("Haul away debris", other.ID, other.ID)

	r := suite.routerAs(staff.ID)
	w := suite.do(r, http.MethodDelete, "/tasks/"+itoa(task.ID), nil)
	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.WorkTask{}).Count(&count)
	suite.EqualValues(1, count)
}

func (suite *TaskHandlerTestSuite) TestDeleteTaskAdmin() {
	admin := suite.createTestUser("admin", models.RoleAdmin)
	staff := suite.createTestUser("staff", models.RoleStaff)
	task := suite.createTestTask("Invoice customer", staff.ID, staff.ID)

	r := suite.routerAs(admin.ID)
	w := suite.do(r, http.MethodDelete, "/tasks/"+itoa(task.ID), nil)
	suite.Equal(http.StatusNoContent, w.Code)

	var count int64
	suite.db.Model(&models.WorkTask{}).Count(&count)
	suite.EqualValues(0, count)
}

func (suite *TaskHandlerTestSuite) TestListTasksOrderedByDueDateThenPriority() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	r := suite.routerAs(staff.ID)

	later := time.Now().UTC().Add(72 * time.Hour)
	sooner := time.Now().UTC().Add(24 * time.Hour)

	noDue := suite.createTestTask("no due date", staff.ID, staff.ID)
	dueLater := suite.createTestTask("due later", staff.ID, staff.ID)
	suite.db.Model(dueLater).Update("due_date", later)
	dueSoonLow := suite.createTestTask("due soon, low", staff.ID, staff.ID)
	suite.db.Model(dueSoonLow).Updates(map[string]any{"due_date": sooner, "priority": "LOW"})
	dueSoonUrgent := suite.createTestTask("due soon, urgent", staff.ID, staff.ID)
	suite.db.Model(dueSoonUrgent).Updates(map[string]any{"due_date": sooner, "priority": "URGENT"})

	w := suite.do(r, http.MethodGet, "/tasks", nil)
	suite.Equal(http.StatusOK, w.Code)

	var tasks []models.WorkTask
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tasks))
	suite.Require().Len(tasks, 4)

	// Dated tasks first (earliest due date, lower priority rank first),
	// undated tasks last.
	suite.Equal(dueSoonLow.ID, tasks[0].ID)
	suite.Equal(dueSoonUrgent.ID, tasks[1].ID)
	suite.Equal(dueLater.ID, tasks[2].ID)
	suite.Equal(noDue.ID, tasks[3].ID)
}

func (suite *TaskHandlerTestSuite) TestGetTaskNotFound() {
	staff := suite.createTestUser("staff", models.RoleStaff)
	r := suite.routerAs(staff.ID)

	w := suite.do(r, http.MethodGet, "/tasks/404", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

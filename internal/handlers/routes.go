package handlers

import (
	"net/http"

	"kambaz-backend/internal/event"

	"github.com/gin-gonic/gin"
)

// Router owns the full /api route table. Several paths overlap in shape
// (for example /api/courses/:courseId/users and
// /api/courses/quizzes/:quizId), which gin's tree cannot hold side by side,
// so the course subtree registers generic segments and dispatches on the
// literal values "modules", "assignments" and "quizzes".
type Router struct {
	User       *UserHandler
	Course     *CourseHandler
	Module     *ModuleHandler
	Assignment *AssignmentHandler
	Enrollment *EnrollmentHandler
	Quiz       *QuizHandler
	Attempt    *AttemptHandler
	Publisher  *event.EventPublisher
}

func (rt *Router) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/users", rt.User.ListUsers)
	api.POST("/users", rt.User.CreateUser)
	api.GET("/users/:userId", rt.User.GetUser)
	api.PUT("/users/:userId", rt.User.UpdateUser)
	api.DELETE("/users/:userId", rt.User.DeleteUser)
	api.POST("/users/:userId", rt.userAction)
	api.GET("/users/:userId/courses", rt.Course.ListCoursesForUser)
	api.POST("/users/:userId/courses", rt.createCourse)
	api.POST("/users/:userId/courses/:courseId", func(c *gin.Context) {
		rt.Enrollment.Enroll(c)
		rt.publish("enrollment.created", gin.H{"user": c.Param("userId"), "course": c.Param("courseId")})
	})
	api.DELETE("/users/:userId/courses/:courseId", rt.Enrollment.Unenroll)

	api.GET("/courses", rt.Course.ListCourses)
	api.PUT("/courses/:courseId", rt.Course.UpdateCourse)
	api.DELETE("/courses/:courseId", rt.Course.DeleteCourse)
	api.GET("/courses/:courseId/:itemId", rt.getCourseItem)
	api.POST("/courses/:courseId/:itemId", rt.createCourseItem)
	api.PUT("/courses/:courseId/:itemId", rt.updateCourseItem)
	api.DELETE("/courses/:courseId/:itemId", rt.deleteCourseItem)
	api.GET("/courses/:courseId/:itemId/:subId", rt.getCourseSubItem)
	api.POST("/courses/:courseId/:itemId/:subId", rt.postCourseSubItem)
	api.PATCH("/courses/:courseId/:itemId/:subId", rt.patchCourseSubItem)
}

// userAction handles POST /api/users/<action> where action is one of the
// account verbs rather than a user id.
func (rt *Router) userAction(c *gin.Context) {
	switch c.Param("userId") {
	case "signup":
		rt.User.Signup(c)
	case "signin":
		rt.User.Signin(c)
		rt.publish("user.signin", gin.H{"status": c.Writer.Status()})
	case "signout":
		rt.User.Signout(c)
	case "profile":
		rt.User.Profile(c)
	default:
		notFound(c)
	}
}

// createCourse handles POST /api/users/current/courses; no other user id is
// valid for course creation.
func (rt *Router) createCourse(c *gin.Context) {
	if c.Param("userId") != "current" {
		notFound(c)
		return
	}
	rt.Course.CreateCourse(c)
	if c.Writer.Status() == http.StatusOK {
		rt.publish("course.created", nil)
	}
}

func (rt *Router) getCourseItem(c *gin.Context) {
	if c.Param("courseId") == "quizzes" {
		setParam(c, "quizId", c.Param("itemId"))
		rt.Quiz.GetQuiz(c)
		return
	}
	switch c.Param("itemId") {
	case "users":
		rt.Course.ListUsersForCourse(c)
	case "modules":
		rt.Module.ListModules(c)
	case "assignments":
		rt.Assignment.ListAssignments(c)
	case "quizzes":
		rt.Quiz.ListQuizzes(c)
	default:
		notFound(c)
	}
}

func (rt *Router) createCourseItem(c *gin.Context) {
	switch c.Param("itemId") {
	case "modules":
		rt.Module.CreateModule(c)
	case "assignments":
		rt.Assignment.CreateAssignment(c)
	case "quizzes":
		rt.Quiz.CreateQuiz(c)
	default:
		notFound(c)
	}
}

func (rt *Router) updateCourseItem(c *gin.Context) {
	switch c.Param("courseId") {
	case "modules":
		setParam(c, "moduleId", c.Param("itemId"))
		rt.Module.UpdateModule(c)
	case "assignments":
		setParam(c, "assignmentId", c.Param("itemId"))
		rt.Assignment.UpdateAssignment(c)
	case "quizzes":
		setParam(c, "quizId", c.Param("itemId"))
		rt.Quiz.UpdateQuiz(c)
	default:
		notFound(c)
	}
}

func (rt *Router) deleteCourseItem(c *gin.Context) {
	switch c.Param("courseId") {
	case "modules":
		setParam(c, "moduleId", c.Param("itemId"))
		rt.Module.DeleteModule(c)
	case "assignments":
		setParam(c, "assignmentId", c.Param("itemId"))
		rt.Assignment.DeleteAssignment(c)
	case "quizzes":
		setParam(c, "quizId", c.Param("itemId"))
		rt.Quiz.DeleteQuiz(c)
		rt.publish("quiz.deleted", gin.H{"quiz": c.Param("itemId")})
	default:
		notFound(c)
	}
}

func (rt *Router) getCourseSubItem(c *gin.Context) {
	if c.Param("courseId") == "quizzes" && c.Param("subId") == "attempts" {
		setParam(c, "quizId", c.Param("itemId"))
		rt.Attempt.ListAttempts(c)
		return
	}
	notFound(c)
}

func (rt *Router) postCourseSubItem(c *gin.Context) {
	if c.Param("courseId") == "quizzes" && c.Param("subId") == "attempts" {
		setParam(c, "quizId", c.Param("itemId"))
		rt.Attempt.SubmitAttempt(c)
		if c.Writer.Status() == http.StatusCreated {
			rt.publish("attempt.submitted", gin.H{"quiz": c.Param("itemId")})
		}
		return
	}
	notFound(c)
}

func (rt *Router) patchCourseSubItem(c *gin.Context) {
	if c.Param("courseId") == "quizzes" && c.Param("subId") == "publish" {
		setParam(c, "quizId", c.Param("itemId"))
		rt.Quiz.TogglePublish(c)
		if c.Writer.Status() == http.StatusOK {
			rt.publish("quiz.published", gin.H{"quiz": c.Param("itemId")})
		}
		return
	}
	notFound(c)
}

func (rt *Router) publish(eventType string, payload any) {
	if rt.Publisher != nil {
		rt.Publisher.Publish(eventType, payload)
	}
}

func setParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

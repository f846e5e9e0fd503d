package main

// app.go is the interactive scene loop: each navigation view renders a menu,
// collects input and calls into the services. The session and the history
// live here, owned by the presentation layer and passed nowhere else.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursehub/internal/apperr"
	"coursehub/internal/models"
	"coursehub/internal/navigation"
	"coursehub/internal/service"
	"coursehub/internal/session"
)

type app struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner

	auth    service.AuthService
	courses service.CourseService
	reviews service.ReviewService

	sess *session.Session
	hist *navigation.History

	quit bool
}

func (a *app) run() {
	a.scanner = bufio.NewScanner(a.in)
	ctx := context.Background()

	for !a.quit {
		switch a.hist.Current().View {
		case navigation.ViewLogin:
			a.loginScene()
		case navigation.ViewHome:
			a.homeScene()
		case navigation.ViewSearch:
			a.searchScene(ctx)
		case navigation.ViewBrowse:
			a.browseScene(ctx)
		case navigation.ViewCourseDetail:
			a.courseDetailScene(ctx, a.hist.Current().CourseID)
		case navigation.ViewMyReviews:
			a.myReviewsScene(ctx)
		default:
			a.hist.Visit(navigation.Entry{View: navigation.ViewHome})
		}
	}
}

func (a *app) loginScene() {
	a.printf("\n== Course Reviews - Login ==\n")
	a.printf("1) Log in\n2) Create account\n3) Quit\n")

	switch a.prompt("choice") {
	case "1":
		username := a.prompt("username")
		password := a.prompt("password")
		user, err := a.auth.Login(username, password)
		if err != nil {
			a.printf("Login failed: %v\n", err)
			return
		}
		a.sess.SetCurrent(user)
		a.printf("Welcome, %s!\n", user.Username)
		a.hist.Visit(navigation.Entry{View: navigation.ViewHome})
	case "2":
		username := a.prompt("username")
		password := a.prompt("password")
		confirm := a.prompt("confirm password")
		if _, err := a.auth.Register(username, password, confirm); err != nil {
			a.printf("Could not create account: %v\n", err)
			return
		}
		a.printf("Account created. Please log in.\n")
	case "3":
		a.quit = true
	}
}

func (a *app) homeScene() {
	user := a.sess.Current()
	if user == nil {
		a.hist.Visit(navigation.Entry{View: navigation.ViewLogin})
		return
	}

	a.printf("\n== Home - logged in as %s ==\n", user.Username)
	a.printf("1) Search courses\n2) Browse all courses\n3) My reviews\n4) Log out\n5) Quit\n")

	switch a.prompt("choice") {
	case "1":
		a.hist.Visit(navigation.Entry{View: navigation.ViewSearch})
	case "2":
		a.hist.Visit(navigation.Entry{View: navigation.ViewBrowse})
	case "3":
		a.hist.Visit(navigation.Entry{View: navigation.ViewMyReviews})
	case "4":
		a.sess.Clear()
		a.hist.Visit(navigation.Entry{View: navigation.ViewLogin})
	case "5":
		a.quit = true
	}
}

func (a *app) searchScene(ctx context.Context) {
	a.printf("\n== Course Search ==\n")
	a.printf("Leave a filter blank to skip it.\n")
	subject := a.prompt("subject")
	number := a.prompt("number")
	title := a.prompt("title contains")

	results, err := a.courses.Search(ctx, subject, number, title)
	if err != nil {
		a.printf("Search failed: %v\n", err)
		a.back()
		return
	}
	a.printCourses(results)

	a.printf("1) Open course by id\n2) Add a course\n3) Search again\n4) Back\n")
	switch a.prompt("choice") {
	case "1":
		a.openCourse()
	case "2":
		a.addCourse(ctx)
	case "3":
		// stay on this scene
	case "4":
		a.back()
	}
}

func (a *app) browseScene(ctx context.Context) {
	a.printf("\n== All Courses ==\n")
	courses, err := a.courses.BrowseAll(ctx)
	if err != nil {
		a.printf("Could not load courses: %v\n", err)
		a.back()
		return
	}
	a.printCourses(courses)

	a.printf("1) Open course by id\n2) Back\n")
	switch a.prompt("choice") {
	case "1":
		a.openCourse()
	default:
		a.back()
	}
}

func (a *app) courseDetailScene(ctx context.Context, courseID int64) {
	course, err := a.courses.GetCourse(ctx, courseID)
	if err != nil {
		a.printf("Could not load course: %v\n", err)
		a.back()
		return
	}

	a.printf("\n== %s %04d: %s ==\n", course.Subject, course.Number, course.Title)
	if course.HasRatings() {
		a.printf("Average rating: %.2f\n", course.AverageRating)
	} else {
		a.printf("No ratings yet\n")
	}

	reviews, err := a.reviews.ListForCourse(ctx, courseID)
	if err == nil {
		for _, r := range reviews {
			a.printf("- %d/5 on %s", r.Rating, r.Timestamp.Format("2006-01-02 15:04"))
			if r.Comment != "" {
				a.printf(": %s", r.Comment)
			}
			a.printf("\n")
		}
	}

	user := a.sess.Current()
	mine, err := a.reviews.UserReview(ctx, user.ID, courseID)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		// Only a missing review means "offer to submit one"; anything
		// else is a store problem the user should see.
		a.printf("Could not load your review: %v\n", err)
		a.back()
		return
	}
	if err == nil {
		a.printf("Your review: %d/5", mine.Rating)
		if mine.Comment != "" {
			a.printf(" - %s", mine.Comment)
		}
		a.printf("\n1) Edit my review\n2) Delete my review\n3) Back\n")
		switch a.prompt("choice") {
		case "1":
			rating, comment, ok := a.promptReview()
			if !ok {
				return
			}
			if _, err := a.reviews.Edit(ctx, user.ID, courseID, rating, comment); err != nil {
				a.printf("Could not update review: %v\n", err)
				return
			}
			a.printf("Review updated.\n")
		case "2":
			if err := a.reviews.Remove(ctx, user.ID, courseID); err != nil {
				a.printf("Could not delete review: %v\n", err)
				return
			}
			a.printf("Review deleted.\n")
		case "3":
			a.back()
		}
		return
	}

	a.printf("1) Submit a review\n2) Back\n")
	switch a.prompt("choice") {
	case "1":
		rating, comment, ok := a.promptReview()
		if !ok {
			return
		}
		if _, err := a.reviews.Submit(ctx, user.ID, courseID, rating, comment); err != nil {
			a.printf("Could not submit review: %v\n", err)
			return
		}
		a.printf("Review submitted.\n")
	default:
		a.back()
	}
}

func (a *app) myReviewsScene(ctx context.Context) {
	user := a.sess.Current()
	a.printf("\n== My Reviews ==\n")

	courses, err := a.courses.ReviewedBy(ctx, user.ID)
	if err != nil {
		a.printf("Could not load your reviews: %v\n", err)
		a.back()
		return
	}
	if len(courses) == 0 {
		a.printf("You have not reviewed any courses.\n")
	}
	for _, c := range courses {
		// AverageRating carries this user's own rating here.
		a.printf("[%d] %s %04d %s - my rating: %.0f/5\n", c.ID, c.Subject, c.Number, c.Title, c.AverageRating)
	}

	a.printf("1) Open course by id\n2) Back\n")
	switch a.prompt("choice") {
	case "1":
		a.openCourse()
	default:
		a.back()
	}
}

func (a *app) addCourse(ctx context.Context) {
	subject := a.prompt("subject (2-4 letters)")
	number := a.prompt("number (4 digits)")
	title := a.prompt("title (1-50 characters)")

	course, err := a.courses.AddCourse(ctx, subject, number, title)
	if err != nil {
		a.printf("Could not add course: %v\n", err)
		return
	}
	a.printf("Added %s %04d: %s\n", course.Subject, course.Number, course.Title)
}

func (a *app) openCourse() {
	id, err := strconv.ParseInt(a.prompt("course id"), 10, 64)
	if err != nil {
		a.printf("Course id must be numeric.\n")
		return
	}
	a.hist.Visit(navigation.Entry{View: navigation.ViewCourseDetail, CourseID: id})
}

func (a *app) promptReview() (rating int, comment string, ok bool) {
	rating, err := strconv.Atoi(a.prompt("rating (1-5)"))
	if err != nil {
		a.printf("Rating must be numeric.\n")
		return 0, "", false
	}
	return rating, a.prompt("comment (optional)"), true
}

func (a *app) printCourses(courses []models.Course) {
	if len(courses) == 0 {
		a.printf("No courses found.\n")
		return
	}
	for _, c := range courses {
		if c.HasRatings() {
			a.printf("[%d] %s %04d %s - %.2f\n", c.ID, c.Subject, c.Number, c.Title, c.AverageRating)
		} else {
			a.printf("[%d] %s %04d %s - no ratings yet\n", c.ID, c.Subject, c.Number, c.Title)
		}
	}
}

func (a *app) back() {
	a.hist.Back()
}

func (a *app) prompt(label string) string {
	a.printf("%s> ", label)
	if !a.scanner.Scan() {
		a.quit = true
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

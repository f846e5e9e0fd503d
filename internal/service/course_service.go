package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"coursehub/internal/apperr"
	"coursehub/internal/models"
	"coursehub/internal/repository"
)

var ErrCourseExists = errors.New("a course with this subject, number and title already exists")

var (
	subjectPattern = regexp.MustCompile(`^[a-zA-Z]{2,4}$`)
	numberPattern  = regexp.MustCompile(`^\d{4}$`)
)

// CourseService is the collaborator-facing surface for course operations:
// it validates input, delegates to the repository and shapes results for
// presentation.
type CourseService interface {
	AddCourse(ctx context.Context, subject, number, title string) (*models.Course, error)
	Search(ctx context.Context, subject, number, title string) ([]models.Course, error)
	BrowseAll(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ReviewedBy(ctx context.Context, userID int64) ([]models.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

func NewCourseService(courseRepo repository.CourseRepository, logger *slog.Logger) CourseService {
	return &courseService{courseRepo: courseRepo, logger: logger}
}

// AddCourse validates and stores a new course. Subject must be 2-4 letters
// (stored uppercase), number exactly 4 digits, title 1-50 characters.
func (s *courseService) AddCourse(ctx context.Context, subject, number, title string) (*models.Course, error) {
	subject = strings.TrimSpace(subject)
	number = strings.TrimSpace(number)
	title = strings.TrimSpace(title)

	if !subjectPattern.MatchString(subject) {
		return nil, apperr.Validation("subject must be 2-4 letters")
	}
	if !numberPattern.MatchString(number) {
		return nil, apperr.Validation("course number must be exactly 4 digits")
	}
	if title == "" || len(title) > 50 {
		return nil, apperr.Validation("title must be between 1 and 50 characters")
	}

	n, _ := strconv.Atoi(number)
	course := &models.Course{
		Subject: subject, // repository uppercases before storing
		Number:  n,
		Title:   title,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			return nil, ErrCourseExists
		}
		s.logger.Error("creating course failed", "error", err)
		return nil, err
	}
	return course, nil
}

// Search applies the optional filters, combined with AND. A non-numeric
// number filter is a validation failure rather than an empty result. With
// every filter blank this is equivalent to listing all courses.
func (s *courseService) Search(ctx context.Context, subject, number, title string) ([]models.Course, error) {
	filter := repository.SearchFilter{
		Subject: strings.TrimSpace(subject),
		Title:   strings.TrimSpace(title),
	}

	if numberText := strings.TrimSpace(number); numberText != "" {
		n, err := strconv.Atoi(numberText)
		if err != nil {
			return nil, apperr.Validation("course number must be numeric")
		}
		filter.Number = &n
	}

	courses, err := s.courseRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("course search failed", "error", err)
		return nil, err
	}
	return courses, nil
}

// BrowseAll returns every course sorted by title, case-insensitively. The
// repository itself makes no ordering promise; the sort lives here because it
// is a presentation concern.
func (s *courseService) BrowseAll(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("listing courses failed", "error", err)
		return nil, err
	}
	sort.Slice(courses, func(i, j int) bool {
		return strings.ToLower(courses[i].Title) < strings.ToLower(courses[j].Title)
	})
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if !apperr.IsKind(err, apperr.KindNotFound) {
			s.logger.Error("loading course failed", "error", err)
		}
		return nil, err
	}
	return course, nil
}

// ReviewedBy lists the courses the user has reviewed, each carrying the
// rating that user gave rather than the global average.
func (s *courseService) ReviewedBy(ctx context.Context, userID int64) ([]models.Course, error) {
	courses, err := s.courseRepo.ListReviewedBy(ctx, userID)
	if err != nil {
		s.logger.Error("listing reviewed courses failed", "error", err)
		return nil, err
	}
	return courses, nil
}

package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	courseStore "lessonportal/internal/adapters/storage/course"
	enrollmentStore "lessonportal/internal/adapters/storage/enrollment"
	userStore "lessonportal/internal/adapters/storage/user"
	"lessonportal/internal/domain/course"
	"lessonportal/internal/domain/enrollment"
	"lessonportal/internal/domain/user"
)

// SeedDemoDeps holds stores needed for demo seeding.
type SeedDemoDeps struct {
	UserStore       userStore.Store
	CourseStore     courseStore.Store
	EnrollmentStore enrollmentStore.Store
}

// demoUserDef defines a single demo user to seed.
type demoUserDef struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

func demoUsers() []demoUserDef {
	return []demoUserDef{
		{
			Email:     "pat.reed@excelcourses.nz",
			Password:  "Teach+excel1",
			FirstName: "Pat",
			LastName:  "Reed",
			Role:      user.RoleInstructor,
		},
		{
			Email:     "ana.silva@example.com",
			Password:  "Learn+excel1",
			FirstName: "Ana",
			LastName:  "Silva",
			Role:      user.RoleStudent,
		},
		{
			Email:     "sam.kahu@example.com",
			Password:  "Learn+excel2",
			FirstName: "Sam",
			LastName:  "Kahu",
			Role:      user.RoleStudent,
		},
	}
}

// ExecuteSeedDemo populates a fresh database with a demo program: one
// course in the Excel program, one outside it, a class batch per course,
// an instructor, and enrolled students. It is idempotent — it runs only
// when the user table is empty.
// PRE: Database is migrated
// POST: A student, a second (unenrolled-in-program) student, an
// instructor, two courses, two class batches and the enrollments exist
func ExecuteSeedDemo(ctx context.Context, deps SeedDemoDeps) error {
	count, err := deps.UserStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed demo: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	ids := make(map[string]int64, len(demoUsers()))
	for _, def := range demoUsers() {
		u := user.User{
			Email:     def.Email,
			FirstName: def.FirstName,
			LastName:  def.LastName,
			Role:      def.Role,
		}
		if err := u.SetPassword(def.Password); err != nil {
			return fmt.Errorf("seed demo: hash password for %s: %w", def.Email, err)
		}
		if err := u.Validate(); err != nil {
			return fmt.Errorf("seed demo: invalid user %s: %w", def.Email, err)
		}
		id, err := deps.UserStore.Save(ctx, u)
		if err != nil {
			return fmt.Errorf("seed demo: save user %s: %w", def.Email, err)
		}
		ids[def.Email] = id
	}

	excelID, err := deps.CourseStore.SaveCourse(ctx, course.Course{
		Title: course.ProgramFilter + " Essentials",
	})
	if err != nil {
		return fmt.Errorf("seed demo: save excel course: %w", err)
	}
	wordID, err := deps.CourseStore.SaveCourse(ctx, course.Course{
		Title: "Introduction to Microsoft Word",
	})
	if err != nil {
		return fmt.Errorf("seed demo: save word course: %w", err)
	}

	instructorID := ids["pat.reed@excelcourses.nz"]
	excelClassID, err := deps.CourseStore.SaveClassBatch(ctx, course.ClassBatch{
		CourseID:     excelID,
		InstructorID: instructorID,
	})
	if err != nil {
		return fmt.Errorf("seed demo: save excel class: %w", err)
	}
	wordClassID, err := deps.CourseStore.SaveClassBatch(ctx, course.ClassBatch{
		CourseID:     wordID,
		InstructorID: instructorID,
	})
	if err != nil {
		return fmt.Errorf("seed demo: save word class: %w", err)
	}

	// Ana is active in the Excel class; Sam only has a class outside the
	// program, so the access checks deny Sam's handouts.
	seedEnrollments := []enrollment.Enrollment{
		{StudentID: ids["ana.silva@example.com"], ClassID: excelClassID, Status: enrollment.StatusActive},
		{StudentID: ids["sam.kahu@example.com"], ClassID: wordClassID, Status: enrollment.StatusActive},
	}
	for _, e := range seedEnrollments {
		if _, err := deps.EnrollmentStore.Save(ctx, e); err != nil {
			return fmt.Errorf("seed demo: save enrollment: %w", err)
		}
	}

	slog.Info("seed_demo_complete", "users", len(ids),
		"excel_class_id", excelClassID, "word_class_id", wordClassID)
	return nil
}

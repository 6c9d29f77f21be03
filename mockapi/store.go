package mockapi

import (
	"sync"

	"github.com/edusphere/admin-client/model"
)

// Store holds all mock state behind one lock. Handlers are the only callers,
// tests reach the data through the HTTP surface like any other client.
type Store struct {
	mu sync.Mutex

	nextID uint

	courses       map[uint]*model.Course
	chapters      map[uint][]model.Chapter // keyed by course id
	categories    []model.Category
	features      []model.CourseFeature
	joins         []model.JoinRequirement
	branches      []model.Branch
	teachers      []model.Teacher
	batches       map[uint]*model.Batch
	students      map[uint]*model.Student
	enrollments   map[uint]*model.Enrollment
	payments      map[uint][]model.PaymentRecord // keyed by enrollment id
	seminars      map[uint]*model.Seminar
	registrations map[uint][]model.SeminarRegistration // keyed by seminar id
	coupons       map[string]float64
	courseOrder   []uint
	batchOrder    []uint
	studentOrder  []uint
	enrollOrder   []uint
	seminarOrder  []uint
}

// NewStore seeds the fixed reference data every test scenario relies on.
func NewStore() *Store {
	s := &Store{
		nextID:        1000,
		courses:       map[uint]*model.Course{},
		chapters:      map[uint][]model.Chapter{},
		batches:       map[uint]*model.Batch{},
		students:      map[uint]*model.Student{},
		enrollments:   map[uint]*model.Enrollment{},
		payments:      map[uint][]model.PaymentRecord{},
		seminars:      map[uint]*model.Seminar{},
		registrations: map[uint][]model.SeminarRegistration{},
		coupons:       map[string]float64{"WELCOME10": 10},
	}

	s.categories = []model.Category{
		{ID: 1, Name: "Development", Slug: "development"},
		{ID: 2, Name: "Design", Slug: "design"},
		{ID: 3, Name: "Marketing", Slug: "marketing"},
	}
	s.features = []model.CourseFeature{
		{ID: 1, Kind: "facility", Name: "Recorded classes"},
		{ID: 2, Kind: "facility", Name: "Job placement support"},
		{ID: 3, Kind: "learning", Name: "Build production projects"},
		{ID: 4, Kind: "tool", Name: "VS Code"},
	}
	s.joins = []model.JoinRequirement{
		{ID: 1, Label: "Students"},
		{ID: 2, Label: "Job seekers"},
		{ID: 3, Label: "Professionals"},
	}
	s.branches = []model.Branch{
		{ID: 1, Name: "Dhanmondi", Address: "Dhaka"},
		{ID: 2, Name: "Uttara", Address: "Dhaka"},
	}
	s.teachers = []model.Teacher{
		{ID: 1, BranchID: 1, Name: "Farhan Ahmed", Designation: "Senior Instructor"},
		{ID: 2, BranchID: 1, Name: "Nusrat Jahan", Designation: "Instructor"},
		{ID: 3, BranchID: 2, Name: "Tanvir Hasan", Designation: "Instructor"},
	}

	s.courses[1] = &model.Course{ID: 1, CategoryID: 1, Title: "Full Stack Web Development", Slug: "full-stack-web-development", Price: 12000, Status: model.CoursePublished}
	s.courseOrder = []uint{1}

	s.students[1] = &model.Student{ID: 1, Name: "Rakib Hossain", Email: "rakib@example.com", Phone: "01700000001", IsActive: true}
	s.studentOrder = []uint{1}

	return s
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *Store) teachersOf(branchID uint) []model.Teacher {
	var out []model.Teacher
	for _, t := range s.teachers {
		if t.BranchID == branchID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) teacherInBranch(teacherID, branchID uint) bool {
	for _, t := range s.teachers {
		if t.ID == teacherID && t.BranchID == branchID {
			return true
		}
	}
	return false
}

func removeID(ids []uint, id uint) []uint {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

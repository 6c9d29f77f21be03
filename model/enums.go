package model

// Wire enums shared by the resource client and the form layer. The admin API
// represents these as small integers; names here are the single source of
// truth, handlers and forms must not use raw numbers.

// LessonType identifies what a lesson row contains.
type LessonType int

const (
	LessonTypeVideo   LessonType = 1
	LessonTypeArticle LessonType = 2
	LessonTypeQuiz    LessonType = 3
)

// LessonTypeLabels maps lesson types to their display names.
var LessonTypeLabels = map[LessonType]string{
	LessonTypeVideo:   "Video",
	LessonTypeArticle: "Article",
	LessonTypeQuiz:    "Quiz",
}

// Valid reports whether t is a known lesson type.
func (t LessonType) Valid() bool {
	_, ok := LessonTypeLabels[t]
	return ok
}

// ChapterStatus controls chapter visibility on the student side.
type ChapterStatus int

const (
	ChapterHidden    ChapterStatus = 0
	ChapterPublished ChapterStatus = 1
)

// CourseStatus is the course lifecycle state.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// DiscountType tags which of the two mutually exclusive discount fields
// applies to a batch.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PaymentMethod identifies how an enrollment payment was collected.
type PaymentMethod int

const (
	PaymentMethodCash   PaymentMethod = 1
	PaymentMethodBkash  PaymentMethod = 2
	PaymentMethodNagad  PaymentMethod = 3
	PaymentMethodRocket PaymentMethod = 4
	PaymentMethodBank   PaymentMethod = 5
	PaymentMethodCard   PaymentMethod = 6
)

// PaymentMethodLabels maps payment methods to their display names.
var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:   "Cash",
	PaymentMethodBkash:  "bKash",
	PaymentMethodNagad:  "Nagad",
	PaymentMethodRocket: "Rocket",
	PaymentMethodBank:   "Bank Transfer",
	PaymentMethodCard:   "Card",
}

// PaymentStatus is the settlement state of a single payment record.
type PaymentStatus int

const (
	PaymentPending  PaymentStatus = 0
	PaymentPaid     PaymentStatus = 1
	PaymentFailed   PaymentStatus = 2
	PaymentRefunded PaymentStatus = 3
)

// PaymentStatusLabels maps payment statuses to their display names.
var PaymentStatusLabels = map[PaymentStatus]string{
	PaymentPending:  "Pending",
	PaymentPaid:     "Paid",
	PaymentFailed:   "Failed",
	PaymentRefunded: "Refunded",
}

// PaymentType distinguishes full payments from partial ones that leave a due
// amount on the enrollment ledger.
type PaymentType int

const (
	PaymentFull    PaymentType = 1
	PaymentPartial PaymentType = 2
)

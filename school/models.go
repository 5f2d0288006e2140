// Package school defines the document models for every profile and feature
// collection. Each record is a flat field map keyed by an identity handle or
// a generated id; cross-references are stored as plain fields (studentId,
// createdBy) rather than joins.
package school

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Fee status values for students.
const (
	FeePending = "Pending"
	FeePaid    = "Paid"
)

// Leave lifecycle values. New applications are always stored as Pending.
const (
	LeavePending  = "Pending"
	LeaveAccepted = "Accepted"
	LeaveRejected = "Rejected"
)

// Leave types.
const (
	LeaveSick    = "Sick"
	LeaveHoliday = "Holiday"
)

// Discipline case levels.
const (
	LevelMinor = "Minor"
	LevelMajor = "Major"
)

// Announcement targets. Class-scoped targets use the "class_<name>" form,
// e.g. "class_5".
const (
	TargetAll  = "all"
	TargetTrio = "trio"
)

// NowMillis returns the current time as epoch milliseconds, the timestamp
// convention used across all feature collections.
func NowMillis() int64 { return time.Now().UnixMilli() }

// StringList stores an ordered list of class identifiers as JSON text.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("invalid type for StringList")
	}
}

// RawList stores a list as raw JSON without assuming element types. The
// legacy teachers collection may hold heterogeneous lists; consumers parse
// defensively and keep only the string elements.
type RawList []byte

func (r RawList) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return string(r), nil
}

func (r *RawList) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*r = append((*r)[0:0], v...)
	case string:
		*r = []byte(v)
	default:
		return errors.New("invalid type for RawList")
	}
	return nil
}

// Strings returns the string elements of the raw list, in original order.
// Non-string elements are dropped.
func (r RawList) Strings() []string {
	if len(r) == 0 {
		return nil
	}
	var elems []any
	if err := json.Unmarshal(r, &elems); err != nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// User is a record in the unified users collection (principal, hm and any
// staff registered after the schema was unified).
type User struct {
	UserID          string     `gorm:"primaryKey;column:user_id" json:"userId"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Password        string     `json:"-"`
	ClassName       string     `json:"className,omitempty"`
	Subject         string     `json:"subject,omitempty"`
	ClassesAssigned StringList `gorm:"type:text" json:"classesAssigned,omitempty"`
	FeeStatus       string     `json:"feeStatus,omitempty"`
	Rating          float64    `json:"rating,omitempty"`
}

func (User) TableName() string { return "users" }

// Student is a record in the students collection.
type Student struct {
	StudentID   string  `gorm:"primaryKey;column:student_id" json:"studentId"`
	Name        string  `json:"name"`
	DOB         string  `gorm:"column:dob" json:"dob"`
	ClassName   string  `gorm:"index" json:"className"`
	RollNo      string  `json:"rollNo"`
	ParentPhone string  `json:"parentPhone"`
	FeeStatus   string  `json:"feeStatus"` // Pending, Paid
	Rating      float64 `json:"rating"`
	Role        string  `json:"role"`
	Email       string  `json:"email"`
	Password    string  `json:"-"`
}

func (Student) TableName() string { return "students" }

// Teacher is a record in the legacy teachers collection, kept for backward
// compatibility with accounts created before the unified users collection.
type Teacher struct {
	TeacherID       string  `gorm:"primaryKey;column:teacher_id" json:"teacherId"`
	Name            string  `json:"name"`
	Role            string  `json:"role"` // teacher, trio, incharge, hm
	Subject         string  `json:"subject"`
	ClassesAssigned RawList `gorm:"type:text" json:"classesAssigned,omitempty"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"-"`
}

func (Teacher) TableName() string { return "teachers" }

// Mark holds one student's marks for one subject. Records are keyed
// "<studentId>_<subject>" so re-entry overwrites rather than duplicates.
type Mark struct {
	ID        string `gorm:"primaryKey" json:"id"`
	StudentID string `gorm:"index" json:"studentId"`
	ClassName string `gorm:"index" json:"className"`
	Subject   string `json:"subject"`
	SlipTest  int    `json:"slipTest"` // out of 20
	FA1       int    `gorm:"column:fa1" json:"fa1"`
	FA2       int    `gorm:"column:fa2" json:"fa2"`
	FA3       int    `gorm:"column:fa3" json:"fa3"`
	FA4       int    `gorm:"column:fa4" json:"fa4"`
	SA1       int    `gorm:"column:sa1" json:"sa1"` // out of 40
	SA2       int    `gorm:"column:sa2" json:"sa2"`
}

func (Mark) TableName() string { return "marks" }

// Leave is a student leave application.
type Leave struct {
	LeaveID     string `gorm:"primaryKey;column:leave_id" json:"leaveId"`
	StudentID   string `gorm:"index" json:"studentId"`
	StudentName string `json:"studentName"`
	ClassName   string `gorm:"index" json:"className"`
	Type        string `json:"type"`   // Sick, Holiday
	Reason      string `json:"reason"`
	Status      string `json:"status"` // Pending, Accepted, Rejected
	DateApplied int64  `gorm:"index" json:"dateApplied"`
}

func (Leave) TableName() string { return "leaves" }

// DisciplineCase is a logged discipline incident.
type DisciplineCase struct {
	CaseID      string `gorm:"primaryKey;column:case_id" json:"caseId"`
	StudentID   string `gorm:"index" json:"studentId"`
	StudentName string `json:"studentName"`
	Level       string `json:"level"` // Minor, Major
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
	Timestamp   int64  `gorm:"index" json:"timestamp"`
}

func (DisciplineCase) TableName() string { return "discipline" }

// Complaint is an anonymous student complaint. Only the class is recorded;
// no student identifier is ever stored.
type Complaint struct {
	ComplaintID string `gorm:"primaryKey;column:complaint_id" json:"complaintId"`
	Message     string `json:"message"`
	ClassName   string `gorm:"index" json:"className"`
	Timestamp   int64  `gorm:"index" json:"timestamp"`
}

func (Complaint) TableName() string { return "complaints" }

// Announcement is a general notice or a trio diary entry.
type Announcement struct {
	AnnounceID string `gorm:"primaryKey;column:announce_id" json:"announceId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Target     string `gorm:"index" json:"target"` // all, trio, class_5, ...
	CreatedBy  string `json:"createdBy"`
	Timestamp  int64  `gorm:"index" json:"timestamp"`
}

func (Announcement) TableName() string { return "announcements" }

// Syllabus is an append-style syllabus progress entry for a class+subject.
type Syllabus struct {
	SyllabusID string `gorm:"primaryKey;column:syllabus_id" json:"syllabusId"`
	ClassName  string `gorm:"index" json:"className"`
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	UpdatedBy  string `json:"updatedBy"`
	Timestamp  int64  `gorm:"index" json:"timestamp"`
}

func (Syllabus) TableName() string { return "syllabus" }

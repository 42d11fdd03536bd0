package navigation

import "fmt"

// View is the closed set of screens the client can be on. Every view belongs
// to exactly one Namespace; the namespace alone decides full-screen rendering
// and which bottom navigation bar is shown.
type View int

const (
	// Public
	ViewSplash View = iota
	ViewOnboarding
	ViewAuth

	// Student
	ViewDashboard
	ViewAttendance
	ViewHomework
	ViewTimetable
	ViewResults
	ViewMaterials
	ViewExamSchedule
	ViewFees
	ViewNotices
	ViewLocation
	ViewGallery
	ViewChat
	ViewProfile
	ViewLeave
	ViewContact

	// Teacher
	ViewTeacherDashboard
	ViewTeacherAttendance
	ViewTeacherHomework
	ViewTeacherNotices
	ViewTeacherStudents
	ViewTeacherProfile

	// Parent
	ViewParentDashboard
	ViewParentAttendance
	ViewParentHomework
	ViewParentTimetable
	ViewParentExamSchedule
	ViewParentResults
	ViewParentFees
	ViewParentNotices
	ViewParentGallery
	ViewParentBus
	ViewParentChat
	ViewParentProfile

	// Admin
	ViewAdminDashboard
	ViewAdminAttendance
	ViewAdminLeaves
	ViewAdminTeachers
	ViewAdminStudents
	ViewAdminTimetable
	ViewAdminResults
	ViewAdminFees
	ViewAdminNotices
	ViewAdminGallery
	ViewAdminChat
	ViewAdminProfile

	// Super admin
	ViewSuperDashboard
	ViewSuperSettings
	ViewSuperAddAdmin
	ViewSuperAddTeacher
	ViewSuperClasses
	ViewSuperApprove
	ViewSuperAnalytics
	ViewSuperNotifications
	ViewSuperLogs

	viewEnd // sentinel, keep last
)

type Namespace int

const (
	NamespacePublic Namespace = iota
	NamespaceStudent
	NamespaceTeacher
	NamespaceParent
	NamespaceAdmin
	NamespaceSuperAdmin
)

func (n Namespace) String() string {
	switch n {
	case NamespacePublic:
		return "public"
	case NamespaceStudent:
		return "student"
	case NamespaceTeacher:
		return "teacher"
	case NamespaceParent:
		return "parent"
	case NamespaceAdmin:
		return "admin"
	case NamespaceSuperAdmin:
		return "superadmin"
	}
	return "unknown"
}

// Namespace is total over the enumeration: the ranges below cover every view
// exactly once.
func (v View) Namespace() Namespace {
	switch {
	case v >= ViewSplash && v <= ViewAuth:
		return NamespacePublic
	case v >= ViewDashboard && v <= ViewContact:
		return NamespaceStudent
	case v >= ViewTeacherDashboard && v <= ViewTeacherProfile:
		return NamespaceTeacher
	case v >= ViewParentDashboard && v <= ViewParentProfile:
		return NamespaceParent
	case v >= ViewAdminDashboard && v <= ViewAdminProfile:
		return NamespaceAdmin
	default:
		return NamespaceSuperAdmin
	}
}

// AllViews returns every view in declaration order.
func AllViews() []View {
	views := make([]View, 0, int(viewEnd))
	for v := ViewSplash; v < viewEnd; v++ {
		views = append(views, v)
	}
	return views
}

// IsPublic reports whether the view is one of splash/onboarding/auth.
func (v View) IsPublic() bool { return v.Namespace() == NamespacePublic }

// IsFullScreen: public views render without any chrome.
func (v View) IsFullScreen() bool { return v.IsPublic() }

// NavBar is which of the mutually exclusive bottom bars is shown. Admin and
// super-admin views carry none.
type NavBar int

const (
	NavBarNone NavBar = iota
	NavBarStudent
	NavBarTeacher
	NavBarParent
)

func (b NavBar) String() string {
	switch b {
	case NavBarStudent:
		return "student"
	case NavBarTeacher:
		return "teacher"
	case NavBarParent:
		return "parent"
	}
	return "none"
}

func (v View) NavBar() NavBar {
	switch v.Namespace() {
	case NamespaceStudent:
		return NavBarStudent
	case NamespaceTeacher:
		return NavBarTeacher
	case NamespaceParent:
		return NavBarParent
	case NamespacePublic, NamespaceAdmin, NamespaceSuperAdmin:
		return NavBarNone
	}
	return NavBarNone
}

var viewNames = map[View]string{
	ViewSplash:             "splash",
	ViewOnboarding:         "onboarding",
	ViewAuth:               "auth",
	ViewDashboard:          "dashboard",
	ViewAttendance:         "attendance",
	ViewHomework:           "homework",
	ViewTimetable:          "timetable",
	ViewResults:            "results",
	ViewMaterials:          "materials",
	ViewExamSchedule:       "examSchedule",
	ViewFees:               "fees",
	ViewNotices:            "notices",
	ViewLocation:           "location",
	ViewGallery:            "gallery",
	ViewChat:               "chat",
	ViewProfile:            "profile",
	ViewLeave:              "leave",
	ViewContact:            "contact",
	ViewTeacherDashboard:   "teacherDashboard",
	ViewTeacherAttendance:  "teacherAttendance",
	ViewTeacherHomework:    "teacherHomework",
	ViewTeacherNotices:     "teacherNotices",
	ViewTeacherStudents:    "teacherStudents",
	ViewTeacherProfile:     "teacherProfile",
	ViewParentDashboard:    "parentDashboard",
	ViewParentAttendance:   "parentAttendance",
	ViewParentHomework:     "parentHomework",
	ViewParentTimetable:    "parentTimetable",
	ViewParentExamSchedule: "parentExamSchedule",
	ViewParentResults:      "parentResults",
	ViewParentFees:         "parentFees",
	ViewParentNotices:      "parentNotices",
	ViewParentGallery:      "parentGallery",
	ViewParentBus:          "parentBus",
	ViewParentChat:         "parentChat",
	ViewParentProfile:      "parentProfile",
	ViewAdminDashboard:     "adminDashboard",
	ViewAdminAttendance:    "adminAttendance",
	ViewAdminLeaves:        "adminLeaves",
	ViewAdminTeachers:      "adminTeachers",
	ViewAdminStudents:      "adminStudents",
	ViewAdminTimetable:     "adminTimetable",
	ViewAdminResults:       "adminResults",
	ViewAdminFees:          "adminFees",
	ViewAdminNotices:       "adminNotices",
	ViewAdminGallery:       "adminGallery",
	ViewAdminChat:          "adminChat",
	ViewAdminProfile:       "adminProfile",
	ViewSuperDashboard:     "superDashboard",
	ViewSuperSettings:      "superSettings",
	ViewSuperAddAdmin:      "superAddAdmin",
	ViewSuperAddTeacher:    "superAddTeacher",
	ViewSuperClasses:       "superClasses",
	ViewSuperApprove:       "superApprove",
	ViewSuperAnalytics:     "superAnalytics",
	ViewSuperNotifications: "superNotifications",
	ViewSuperLogs:          "superLogs",
}

var viewsByName = func() map[string]View {
	m := make(map[string]View, len(viewNames))
	for v, name := range viewNames {
		m[name] = v
	}
	return m
}()

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

func ParseView(s string) (View, error) {
	if v, ok := viewsByName[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

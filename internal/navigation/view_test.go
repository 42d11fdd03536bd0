package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryViewHasExactlyOneNamespace(t *testing.T) {
	counts := map[Namespace]int{}
	for _, v := range AllViews() {
		ns := v.Namespace()
		assert.GreaterOrEqual(t, int(ns), int(NamespacePublic))
		assert.LessOrEqual(t, int(ns), int(NamespaceSuperAdmin))
		counts[ns]++
	}

	assert.Equal(t, 3, counts[NamespacePublic])
	assert.Equal(t, 15, counts[NamespaceStudent])
	assert.Equal(t, 6, counts[NamespaceTeacher])
	assert.Equal(t, 12, counts[NamespaceParent])
	assert.Equal(t, 12, counts[NamespaceAdmin])
	assert.Equal(t, 9, counts[NamespaceSuperAdmin])

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(AllViews()), total)
}

func TestViewNamesRoundTrip(t *testing.T) {
	for _, v := range AllViews() {
		name := v.String()
		assert.NotContains(t, name, "View(", "view %d has no name", int(v))

		parsed, err := ParseView(name)
		assert.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseView("notAView")
	assert.Error(t, err)
}

func TestFullScreenOnlyForPublicViews(t *testing.T) {
	for _, v := range AllViews() {
		assert.Equal(t, v.Namespace() == NamespacePublic, v.IsFullScreen(), "view %s", v)
	}
}

func TestNavBarFollowsNamespace(t *testing.T) {
	assert.Equal(t, NavBarNone, ViewSplash.NavBar())
	assert.Equal(t, NavBarStudent, ViewHomework.NavBar())
	assert.Equal(t, NavBarTeacher, ViewTeacherAttendance.NavBar())
	assert.Equal(t, NavBarParent, ViewParentFees.NavBar())
	assert.Equal(t, NavBarNone, ViewAdminDashboard.NavBar())
	assert.Equal(t, NavBarNone, ViewSuperAnalytics.NavBar())
}

//go:build unit

package enrollment_test

import (
	"strings"
	"testing"

	"course-enrollment/internal/domain/enrollment"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studentID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	instructorID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	courseID     = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	enrollmentID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

func TestEncodeDecode(t *testing.T) {
	t.Run("往復でコマンドが一致", func(t *testing.T) {
		cmds := []enrollment.Command{
			enrollment.CreateCommand{StudentID: studentID, CourseID: courseID},
			enrollment.UpdateCommand{InstructorID: instructorID, EnrollmentID: enrollmentID, Status: enrollment.StatusAccepted},
			enrollment.UpdateCommand{InstructorID: instructorID, EnrollmentID: enrollmentID, Status: enrollment.StatusRejected},
			enrollment.DeleteCommand{StudentID: studentID, EnrollmentID: enrollmentID},
		}
		for _, cmd := range cmds {
			decoded, err := enrollment.Decode(enrollment.Encode(cmd))
			require.NoError(t, err)
			if diff := cmp.Diff(cmd, decoded); diff != "" {
				t.Errorf("command mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("ワイヤ形式", func(t *testing.T) {
		assert.Equal(t,
			"CREATE:11111111-1111-1111-1111-111111111111:33333333-3333-3333-3333-333333333333",
			enrollment.Encode(enrollment.CreateCommand{StudentID: studentID, CourseID: courseID}))
		assert.Equal(t,
			"UPDATE:22222222-2222-2222-2222-222222222222:44444444-4444-4444-4444-444444444444:REJECTED",
			enrollment.Encode(&enrollment.UpdateCommand{InstructorID: instructorID, EnrollmentID: enrollmentID, Status: enrollment.StatusRejected}))
		assert.Equal(t,
			"DELETE:11111111-1111-1111-1111-111111111111:44444444-4444-4444-4444-444444444444",
			enrollment.Encode(enrollment.DeleteCommand{StudentID: studentID, EnrollmentID: enrollmentID}))
	})
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	s, c, e := studentID.String(), courseID.String(), enrollmentID.String()

	cases := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "空文字NG", raw: "", errIs: enrollment.ErrUnknownVerb},
		{name: "未知の動詞NG", raw: "PATCH:" + s + ":" + c, errIs: enrollment.ErrUnknownVerb},
		{name: "小文字の動詞NG", raw: "create:" + s + ":" + c, errIs: enrollment.ErrUnknownVerb},
		{name: "CREATEのフィールド不足NG", raw: "CREATE:" + s, errIs: enrollment.ErrMalformedCommand},
		{name: "CREATEのフィールド過多NG", raw: "CREATE:" + s + ":" + c + ":" + e, errIs: enrollment.ErrMalformedCommand},
		{name: "DELETEのフィールド不足NG", raw: "DELETE:" + s, errIs: enrollment.ErrMalformedCommand},
		{name: "UPDATEのフィールド不足NG", raw: "UPDATE:" + s + ":" + e, errIs: enrollment.ErrMalformedCommand},
		{name: "UUID以外のIDNG", raw: "CREATE:abc:" + c, errIs: enrollment.ErrMalformedCommand},
		{name: "波括弧付きUUIDNG", raw: "DELETE:{" + s + "}:" + e, errIs: enrollment.ErrMalformedCommand},
		{name: "PENDINGへの更新NG", raw: "UPDATE:" + s + ":" + e + ":PENDING", errIs: enrollment.ErrInvalidStatus},
		{name: "未知のステータスNG", raw: "UPDATE:" + s + ":" + e + ":DONE", errIs: enrollment.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := enrollment.Decode(tc.raw)

			require.Nil(t, cmd)
			require.ErrorIs(t, err, tc.errIs)
			assert.True(t, enrollment.IsProtocolError(err))
		})
	}
}

func TestDecodeUppercaseUUID(t *testing.T) {
	raw := "CREATE:" + strings.ToUpper(studentID.String()) + ":" + courseID.String()

	cmd, err := enrollment.Decode(raw)

	require.NoError(t, err)
	assert.Equal(t, enrollment.CreateCommand{StudentID: studentID, CourseID: courseID}, cmd)
}

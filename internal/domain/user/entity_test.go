//go:build unit

package user_test

import (
	"testing"

	"course-enrollment/internal/domain/user"
	"course-enrollment/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleStudent, "Test Student")

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, user.RoleStudent, actual.Role())
		assert.Equal(t, "Test Student", actual.Name())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "STUDENT ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("STUDENT") },
			},
			{
				name:   "INSTRUCTOR ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("INSTRUCTOR") },
			},
			{
				name:   "ADMIN ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") },
			},
			{
				name:   "小文字のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("student") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("無効化", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		u.Deactivate()
		assert.False(t, u.IsActive())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	t.Run("小文字に正規化", func(t *testing.T) {
		email, err := user.NewEmail("  Student@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "student@example.com", email.Value())
	})

	t.Run("表示名付きNG", func(t *testing.T) {
		_, err := user.NewEmail("Student <student@example.com>")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("TLDなしNG", func(t *testing.T) {
		_, err := user.NewEmail("student@localhost")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("password123")
	require.NoError(t, err)
	assert.Equal(t, "password123", p.Value())
}

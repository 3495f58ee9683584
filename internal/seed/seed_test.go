package seed

import (
	"testing"

	"gamereview/backend/internal/database"
	"gamereview/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRunPopulatesAndIsRepeatable(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for i := 0; i < 2; i++ {
		require.NoError(t, Run(db, bcrypt.MinCost))

		var gameCount, userCount, reviewCount int64
		db.Model(&models.Game{}).Count(&gameCount)
		db.Model(&models.User{}).Count(&userCount)
		db.Model(&models.Review{}).Count(&reviewCount)

		assert.EqualValues(t, len(games), gameCount)
		assert.EqualValues(t, len(userNames), userCount)
		assert.EqualValues(t, 10, reviewCount)
	}
}

func TestRunHashesPasswords(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, Run(db, bcrypt.MinCost))

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NotEqual(t, DefaultPassword, user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(DefaultPassword)))
}

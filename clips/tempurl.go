package clips

import (
	"errors"
	"time"

	"mememaker-site/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TempURL is an expiring download token for a produced clip file.
type TempURL struct {
	Token     string `gorm:"uniqueIndex"`
	FilePath  string
	ExpiresAt time.Time
}

func generateToken() string {
	uuidObj := uuid.Must(uuid.NewV7())
	return uuidObj.String()
}

// CreateTempURL returns a download token for filePath. An unexpired
// token for the same file is reused so that polling clients don't pile
// up rows between cleanups.
func CreateTempURL(filePath string) (TempURL, error) {
	var tempURL TempURL
	err := database.Get().
		Where("file_path = ? AND expires_at > ?", filePath, time.Now()).
		First(&tempURL).Error
	if err == nil {
		return tempURL, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return TempURL{}, err
	}

	tempURL = TempURL{
		Token:     generateToken(),
		FilePath:  filePath,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := database.Get().Create(&tempURL).Error; err != nil {
		return TempURL{}, errors.New("failed to create temporary URL")
	}
	return tempURL, nil
}

// LookupTempURL resolves an unexpired token to its file path.
func LookupTempURL(token string) (TempURL, error) {
	var tempURL TempURL
	err := database.Get().
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&tempURL).Error
	return tempURL, err
}

func CleanupExpiredURLs() {
	log.Debugln("cleanupExpiredURLs...")
	result := database.Get().Unscoped().Where("expires_at < ?", time.Now()).Delete(&TempURL{})
	if result.Error != nil {
		log.Errorf("error cleaning up expired URLs: %v", result.Error)
	} else {
		log.Debugf("cleaned up %d expired temporary URLs", result.RowsAffected)
	}
}

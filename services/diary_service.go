package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// SaveProduct stores a diary snapshot for a barcode. One entry per barcode
// per user: a repeat save overwrites the existing row in place, keeping its
// id.
func SaveProduct(userID uint, details models.ProductDetails, barcode string) (*models.SavedProduct, error) {
	snapshot := models.NewSavedProduct(details, barcode, userID)

	var existing models.SavedProduct
	err := config.DB.
		Where("user_id = ? AND barcode = ?", userID, barcode).
		First(&existing).Error
	if err == nil {
		// Save, not Updates: an Updates with a struct skips zero-valued
		// fields and would leave stale numbers behind.
		snapshot.ID = existing.ID
		if err := config.DB.Save(&snapshot).Error; err != nil {
			return nil, err
		}
		return &snapshot, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := config.DB.Create(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListSavedProducts returns the diary newest-first.
func ListSavedProducts(userID uint) ([]models.SavedProduct, error) {
	var products []models.SavedProduct
	err := config.DB.
		Where("user_id = ?", userID).
		Order("saved_date desc").
		Find(&products).Error
	return products, err
}

func RemoveProduct(userID uint, productID string) error {
	result := config.DB.
		Where("user_id = ? AND id = ?", userID, productID).
		Delete(&models.SavedProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("saved product not found")
	}
	return nil
}

// IsProductSaved reports whether a barcode is already in the diary.
func IsProductSaved(userID uint, barcode string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.SavedProduct{}).
		Where("user_id = ? AND barcode = ?", userID, barcode).
		Count(&count).Error
	return count > 0, err
}

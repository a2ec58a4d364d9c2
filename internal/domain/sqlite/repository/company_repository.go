package repository

import (
	"errors"

	"fleetcommander/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (d *DefaultCompanyRepository) FindAll() ([]*entity.Company, error) {
	var companies []*entity.Company
	err := d.db.Order("id").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (d *DefaultCompanyRepository) FindByID(id int64) (*entity.Company, error) {
	var company entity.Company
	err := d.db.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (d *DefaultCompanyRepository) Save(company *entity.Company) error {
	return d.db.Save(company).Error
}

// Delete removes the company and its port associations in one transaction.
// The caller has already verified no ships reference the company.
func (d *DefaultCompanyRepository) Delete(company *entity.Company) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("company_id = ?", company.ID).Delete(&entity.CompanyPort{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(company).Error
	})
}

func (d *DefaultCompanyRepository) FindAssociations(companyID int64) ([]*entity.CompanyPort, error) {
	var assocs []*entity.CompanyPort
	err := d.db.Where("company_id = ?", companyID).Order("id").Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (d *DefaultCompanyRepository) FindAssociation(companyID, portID int64) (*entity.CompanyPort, error) {
	var assoc entity.CompanyPort
	err := d.db.Where("company_id = ? AND port_id = ?", companyID, portID).First(&assoc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

// SaveAssociation upserts a company-port link. When the link is flagged HQ,
// the company's previous HQ is demoted in the same transaction so at most one
// association per company carries the flag.
func (d *DefaultCompanyRepository) SaveAssociation(assoc *entity.CompanyPort) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if assoc.IsHQ {
			err := tx.Model(&entity.CompanyPort{}).
				Where("company_id = ? AND is_hq = ? AND id <> ?", assoc.CompanyID, true, assoc.ID).
				Update("is_hq", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(assoc).Error
	})
}

func (d *DefaultCompanyRepository) DeleteAssociation(assoc *entity.CompanyPort) error {
	return d.db.Delete(assoc).Error
}

func (d *DefaultCompanyRepository) CountAssociationsByPort(portID int64) (int64, error) {
	var count int64
	err := d.db.Model(&entity.CompanyPort{}).Where("port_id = ?", portID).Count(&count).Error
	return count, err
}

package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// SeedDefaultData seeds countries, branches, roles, users and demo records.
// The seed is idempotent: roles are keyed by name and get their permission
// sets refreshed on every boot, users are created only when missing.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	if err := seedCountriesAndBranches(db); err != nil {
		return err
	}
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}
	seedProducts(db)
	seedImportOrders(db)

	log.Println("Default data seeding completed")
	return nil
}

func seedCountriesAndBranches(db *gorm.DB) error {
	var count int64
	db.Model(&entity.Country{}).Count(&count)
	if count > 0 {
		return nil
	}

	countries := []entity.Country{
		{Name: "Tanzania", Code: "TZ"},
		{Name: "Kenya", Code: "KE"},
	}
	if err := db.Create(&countries).Error; err != nil {
		return err
	}

	branches := []entity.Branch{
		{CountryID: countries[0].ID, Name: "Dar es Salaam HQ", Location: "Posta"},
		{CountryID: countries[0].ID, Name: "Arusha Branch", Location: "Clock Tower"},
	}
	return db.Create(&branches).Error
}

func seedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{Name: "Admin", Permissions: enum.PermissionList{enum.PermissionAll}},
		{Name: "Branch Manager", Permissions: enum.PermissionList{
			enum.PermissionDashboard, enum.PermissionImportOrders, enum.PermissionProcurement,
			enum.PermissionInventory, enum.PermissionRetailSales, enum.PermissionLogistics,
			enum.PermissionFinance,
		}},
		{Name: "Procurement Officer", Permissions: enum.PermissionList{
			enum.PermissionImportOrders, enum.PermissionProcurement, enum.PermissionInventory,
		}},
		{Name: "Cashier", Permissions: enum.PermissionList{enum.PermissionRetailSales}},
		{Name: "HR Manager", Permissions: enum.PermissionList{enum.PermissionDashboard, enum.PermissionHR}},
	}

	for i := range roles {
		var existing entity.Role
		err := db.Where("name = ?", roles[i].Name).First(&existing).Error
		if err != nil {
			if err := db.Create(&roles[i]).Error; err != nil {
				return err
			}
			continue
		}
		// Name is the dedup key: refresh the permission set in place.
		existing.Permissions = roles[i].Permissions
		if err := db.Save(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	var branch entity.Branch
	if err := db.First(&branch).Error; err != nil {
		return err
	}

	users := []struct {
		Username string
		Password string
		FullName string
		RoleName string
	}{
		{"admin", "admin123", "System Administrator", "Admin"},
		{"manager_tz", "manager123", "Branch Manager", "Branch Manager"},
		{"hr_manager", "hr123", "HR Specialist", "HR Manager"},
		{"cashier1", "cashier123", "Sales Cashier", "Cashier"},
		{"procurement1", "procurement123", "Procurement Officer", "Procurement Officer"},
	}

	for _, u := range users {
		var role entity.Role
		if err := db.Where("name = ?", u.RoleName).First(&role).Error; err != nil {
			return err
		}

		var existing entity.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{
			BranchID: branch.ID,
			RoleID:   role.ID,
			Username: u.Username,
			Password: string(hash),
			FullName: u.FullName,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) {
	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []entity.Product{
		{Name: "Laptop Pro", SKU: "LP-001", Barcode: "123456789", Category: "Electronics", Price: 2500000, Cost: 1800000, Unit: "pcs"},
		{Name: "Wireless Mouse", SKU: "WM-002", Barcode: "987654321", Category: "Accessories", Price: 45000, Cost: 25000, Unit: "pcs"},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Printf("Warning: failed to seed products: %v", err)
	}
}

func seedImportOrders(db *gorm.DB) {
	var count int64
	db.Model(&entity.ImportOrder{}).Count(&count)
	if count > 0 {
		return
	}

	var admin entity.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		return
	}

	orders := []entity.ImportOrder{
		{UserID: admin.ID, CustomerName: "Zuberi Mwinyi", OrderDetails: "Electronics from Dubai", TotalAmount: 1250000, Status: enum.ImportOrderPending},
		{UserID: admin.ID, CustomerName: "Fatma Hassan", OrderDetails: "Clothing from Turkey", TotalAmount: 450000, Status: enum.ImportOrderInTransit},
		{UserID: admin.ID, CustomerName: "Said Juma", OrderDetails: "Spare parts from China", TotalAmount: 3200000, Status: enum.ImportOrderProcessing},
	}
	if err := db.Create(&orders).Error; err != nil {
		log.Printf("Warning: failed to seed import orders: %v", err)
	}
}

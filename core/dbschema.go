package core

import (
	"time"

	"github.com/lib/pq"
)

// Address is shared by shops, warehouses and customers
type Address struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Country  string `json:"country" gorm:"type:text;not null"`
	City     string `json:"city" gorm:"type:text;not null"`
	Street   string `json:"street" gorm:"type:text;not null"`
	Building string `json:"building" gorm:"type:text"`
}

func (Address) EntityKind() EntityKind { return KindAddress }

type Author struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"firstName" gorm:"type:text;not null"`
	LastName  string `json:"lastName" gorm:"type:text;not null"`
	Country   string `json:"country" gorm:"type:text"`
}

func (Author) EntityKind() EntityKind { return KindAuthor }

// Book is the catalog entry for a printed product
type Book struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint           `json:"productId" gorm:"uniqueIndex;not null"`
	Product   Product        `json:"product" gorm:"foreignKey:ProductID"`
	Authors   []Author       `json:"authors" gorm:"many2many:book_authors"`
	Genres    pq.StringArray `json:"genres" gorm:"type:text[]"`
	ISBN      string         `json:"isbn" gorm:"type:char(13);uniqueIndex"`
	Pages     int            `json:"pages" gorm:"type:integer"`
}

func (Book) EntityKind() EntityKind { return KindBook }

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	PriceCents  int64     `json:"priceCents" gorm:"type:bigint;not null"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Product) EntityKind() EntityKind { return KindProduct }

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	FirstName string    `json:"firstName" gorm:"type:text"`
	LastName  string    `json:"lastName" gorm:"type:text"`
	AddressID *uint     `json:"addressId"`
	Address   *Address  `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Customer) EntityKind() EntityKind { return KindCustomer }

// Employee works at most at one shop or one warehouse at a time
type Employee struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Login       string    `json:"login" gorm:"type:text;uniqueIndex;not null"`
	FirstName   string    `json:"firstName" gorm:"type:text"`
	LastName    string    `json:"lastName" gorm:"type:text"`
	JobTitle    string    `json:"jobTitle" gorm:"type:text;not null"`
	ShopID      *uint     `json:"shopId"`
	WarehouseID *uint     `json:"warehouseId"`
	CDate       time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate       time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Employee) EntityKind() EntityKind { return KindEmployee }

func (e Employee) Role() Role { return ParseRole(e.JobTitle) }

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference  string      `json:"reference" gorm:"type:char(20);uniqueIndex"`
	CustomerID uint        `json:"customerId" gorm:"not null;index"`
	ShopID     uint        `json:"shopId" gorm:"not null;index"`
	Status     string      `json:"status" gorm:"type:text;not null;default:'placed'"`
	Lines      []OrderLine `json:"lines" gorm:"foreignKey:OrderID"`
	TotalCents int64       `json:"totalCents" gorm:"type:bigint;not null;default:0"`
	CDate      time.Time   `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate      time.Time   `json:"mdate" gorm:"autoUpdateTime"`
}

func (Order) EntityKind() EntityKind { return KindOrder }

type OrderLine struct {
	ID        uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint  `json:"orderId" gorm:"not null;index"`
	ProductID uint  `json:"productId" gorm:"not null"`
	Quantity  int   `json:"quantity" gorm:"type:integer;not null"`
	UnitCents int64 `json:"unitCents" gorm:"type:bigint;not null"`
}

type Shop struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	AddressID uint      `json:"addressId" gorm:"not null"`
	Address   Address   `json:"address" gorm:"foreignKey:AddressID"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Shop) EntityKind() EntityKind { return KindShop }

type Warehouse struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	AddressID uint      `json:"addressId" gorm:"not null"`
	Address   Address   `json:"address" gorm:"foreignKey:AddressID"`
	CDate     time.Time `json:"cdate" gorm:"->;<-:create;autoCreateTime"`
	MDate     time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

func (Warehouse) EntityKind() EntityKind { return KindWarehouse }

// ProductCount tracks stock of a product at a shop or a warehouse.
// Exactly one of ShopID/WarehouseID is set.
type ProductCount struct {
	ID          uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   uint  `json:"productId" gorm:"not null;uniqueIndex:uniq_location_product"`
	ShopID      *uint `json:"shopId" gorm:"uniqueIndex:uniq_location_product"`
	WarehouseID *uint `json:"warehouseId" gorm:"uniqueIndex:uniq_location_product"`
	Count       int   `json:"count" gorm:"type:integer;not null;default:0"`
}

func (ProductCount) EntityKind() EntityKind { return KindProductCount }

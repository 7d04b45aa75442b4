package config

import (
	"fmt"
	stdlog "log"
	"net/url"
	"os"
	"strings"
	"time"

	"parkpalace-backend/models"
	"parkpalace-backend/serializers"
	"parkpalace-backend/utils"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "parkpalace")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and seeds
// initial content. It sets the package-level DB handle on success.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.MenuItem{},
		&models.Booking{},
	); err != nil {
		return err
	}

	if utils.EnvOrDefault("SEED_ON_START", "true") != "false" {
		SeedDatabase()
	}
	return nil
}

// SeedDatabase inserts the default admin, rooms and menu when the tables are
// empty. Safe to run on every start.
func SeedDatabase() {
	seedAdmin()
	seedRooms()
	seedMenu()
}

func seedAdmin() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	username := utils.EnvOrDefault("ADMIN_USERNAME", "admin")
	password := utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Warn("failed to hash default admin password")
		return
	}
	if err := DB.Create(&models.User{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		log.WithError(err).Warn("failed to seed default admin")
		return
	}
	log.WithField("username", username).Info("default admin seeded")
}

func seedRooms() {
	var count int64
	DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		return
	}

	rooms := []models.Room{
		{
			Name:        "Executive Suite",
			Description: "Spacious executive suite with panoramic city views, marble bathroom, and premium amenities for the discerning business traveler.",
			Price:       450.00,
			ImageURL:    "images/rooms/executive_suite.jpg",
			Capacity:    4,
			Size:        "75 sqm",
			Amenities:   datatypes.NewJSONSlice(serializers.SplitTags("King Bed,City View,Marble Bathroom,Work Desk,Mini Bar,Premium WiFi")),
			Featured:    true,
		},
		{
			Name:        "Luxury Ocean View",
			Description: "Elegant oceanfront suite featuring floor-to-ceiling windows, private balcony, and world-class spa amenities.",
			Price:       650.00,
			ImageURL:    "images/rooms/luxury_ocean_view.jpg",
			Capacity:    2,
			Size:        "85 sqm",
			Amenities:   datatypes.NewJSONSlice(serializers.SplitTags("Ocean View,Private Balcony,Jacuzzi,Butler Service,Premium Minibar")),
			Featured:    true,
		},
		{
			Name:        "Presidential Suite",
			Description: "Our crown jewel offering unmatched luxury with separate living areas, private dining room, and dedicated concierge service.",
			Price:       1200.00,
			ImageURL:    "images/rooms/presidential_suite.jpg",
			Capacity:    6,
			Size:        "150 sqm",
			Amenities:   datatypes.NewJSONSlice(serializers.SplitTags("Separate Living Room,Private Dining,Concierge Service,Premium Bar,City Panorama")),
			Featured:    true,
		},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.WithError(err).Warn("failed to seed rooms")
		return
	}
	log.Info("rooms seeded")
}

func seedMenu() {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{
			Name:        "Park Palace Signature Breakfast",
			Description: "Traditional breakfast with eggs benedict, artisan breads, fresh fruits, and premium coffee",
			Price:       28.00,
			Category:    models.CategoryBreakfast,
			ImageURL:    "images/menu/breakfast_signature.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegetarian")),
			Available:   true,
		},
		{
			Name:        "Healthy Power Bowl",
			Description: "Quinoa, avocado, fresh berries, nuts, and organic honey drizzle",
			Price:       24.00,
			Category:    models.CategoryBreakfast,
			ImageURL:    "images/menu/power_bowl.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegan,gluten-free")),
			Available:   true,
		},
		{
			Name:        "Mediterranean Grilled Salmon",
			Description: "Fresh Atlantic salmon with roasted vegetables, quinoa, and lemon herb sauce",
			Price:       42.00,
			Category:    models.CategoryLunch,
			ImageURL:    "images/menu/grilled_salmon.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("gluten-free")),
			Available:   true,
		},
		{
			Name:        "Truffle Pasta Primavera",
			Description: "House-made pasta with seasonal vegetables, truffle oil, and parmesan",
			Price:       38.00,
			Category:    models.CategoryLunch,
			ImageURL:    "images/menu/truffle_pasta.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegetarian")),
			Available:   true,
		},
		{
			Name:        "Park Palace Wagyu Steak",
			Description: "Premium A5 Wagyu beef with roasted potatoes, seasonal vegetables, and red wine reduction",
			Price:       85.00,
			Category:    models.CategoryDinner,
			ImageURL:    "images/menu/wagyu_steak.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("")),
			Available:   true,
		},
		{
			Name:        "Lobster Thermidor",
			Description: "Fresh lobster in cognac cream sauce, gruyere cheese, served with herb rice",
			Price:       68.00,
			Category:    models.CategoryDinner,
			ImageURL:    "images/menu/lobster_thermidor.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("gluten-free")),
			Available:   true,
		},
		{
			Name:        "Park Palace Signature Cocktail",
			Description: "Premium gin, elderflower, fresh cucumber, and lime with a touch of rosemary",
			Price:       18.00,
			Category:    models.CategoryBeverages,
			ImageURL:    "images/menu/signature_cocktail.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegan")),
			Available:   true,
		},
		{
			Name:        "Vintage Wine Selection",
			Description: "Curated selection of premium wines from our cellar, paired with artisan cheeses",
			Price:       65.00,
			Category:    models.CategoryBeverages,
			ImageURL:    "images/menu/vintage_wine.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegetarian")),
			Available:   true,
		},
		{
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with molten center, vanilla ice cream, and berry compote",
			Price:       16.00,
			Category:    models.CategoryDesserts,
			ImageURL:    "images/menu/chocolate_lava_cake.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegetarian")),
			Available:   true,
		},
		{
			Name:        "Tiramisu Royale",
			Description: "Classic Italian tiramisu with ladyfingers, mascarpone, and espresso",
			Price:       14.00,
			Category:    models.CategoryDesserts,
			ImageURL:    "images/menu/tiramisu_royale.jpg",
			Dietary:     datatypes.NewJSONSlice(serializers.SplitTags("vegetarian")),
			Available:   true,
		},
	}
	if err := DB.Create(&items).Error; err != nil {
		log.WithError(err).Warn("failed to seed menu items")
		return
	}
	log.Info("menu items seeded")
}

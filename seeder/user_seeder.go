// file: seeder/user_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"Sistem-Absensi-Geofence/models"
	"Sistem-Absensi-Geofence/repository"
)

func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("Memulai seeding user...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Gagal hash password: %v", err)
	}

	adminEmail := "admin.utama@gmail.com"
	adminUser, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && adminUser != nil {
		log.Println("User admin sudah ada, seeding user admin dilewati.")
	} else {
		log.Println("Menambahkan user Admin...")
		newAdmin := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         "Admin Utama",
			Email:        adminEmail,
			Password:     string(hashedPassword),
			Role:         "admin",
			Position:     "Manajer Umum",
			IsFirstLogin: true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		_, err := userRepo.CreateUser(ctx, newAdmin)
		if err != nil {
			log.Printf("Gagal menyimpan user admin: %v\n", err)
		} else {
			fmt.Printf("User Admin (%s) berhasil ditambahkan.\n", newAdmin.Email)
		}
	}

	firstNames := []string{"Budi", "Siti", "Agus", "Dewi", "Joko", "Sri", "Rina", "Andi", "Nur", "Hadi", "Kartika", "Eko", "Maya", "Dian", "Fajar"}
	lastNames := []string{"Santoso", "Wijaya", "Putra", "Utami", "Nugroho", "Rahayu", "Kusumo", "Handayani", "Pratama", "Saputra", "Lestari", "Setiawan"}
	positions := []string{"Software Engineer", "Frontend Developer", "Backend Developer", "DevOps Engineer", "IT Support", "HR Specialist", "Marketing Specialist", "Akuntan"}

	log.Println("Menambahkan 10 user Karyawan...")
	for i := 1; i <= 10; i++ {
		email := fmt.Sprintf("karyawan%02d@gmail.com", i)
		existingUser, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existingUser != nil {
			fmt.Printf("Skipping: User %s sudah ada.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])

		newKaryawan := &models.User{
			ID:           primitive.NewObjectID(),
			Name:         fullName,
			Email:        email,
			Password:     string(hashedPassword),
			Role:         "karyawan",
			Position:     positions[rand.Intn(len(positions))],
			IsFirstLogin: true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		_, err = userRepo.CreateUser(ctx, newKaryawan)
		if err != nil {
			log.Printf("Gagal menyimpan user %s: %v\n", newKaryawan.Name, err)
		} else {
			fmt.Printf("User %s (%s) berhasil ditambahkan.\n", newKaryawan.Name, newKaryawan.Position)
		}
	}

	log.Println("Seeding user selesai.")
}

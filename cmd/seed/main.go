// Command seed bootstraps the campus shops and their owner accounts from
// seed.toml. Safe to re-run: existing shops are skipped by (name, type).
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/haritapaliwal/campus-ease/internal/config"
	"github.com/haritapaliwal/campus-ease/internal/domain"
	shopRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/shop"
	userRepo "github.com/haritapaliwal/campus-ease/internal/infra/storage/user"
	"github.com/haritapaliwal/campus-ease/pkg/txmanager"
)

type seedFile struct {
	Shops []seedShop `toml:"shops"`
}

type seedShop struct {
	Name          string `toml:"name"`
	Type          string `toml:"type"`
	OwnerEmail    string `toml:"owner_email"`
	OwnerPassword string `toml:"owner_password"`

	Menu    []seedMenuItem    `toml:"menu"`
	Slots   []string          `toml:"slots"`
	Laundry []seedLaundryItem `toml:"laundry"`
}

type seedMenuItem struct {
	Item  string  `toml:"item"`
	Price float64 `toml:"price"`
}

type seedLaundryItem struct {
	Category string  `toml:"category"`
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var seed seedFile
	if _, err := toml.DecodeFile("seed.toml", &seed); err != nil {
		fmt.Printf("Failed to load seed.toml: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	shops := shopRepo.NewRepository(db)
	users := userRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	ctx := context.Background()
	for _, s := range seed.Shops {
		if err := seedOne(ctx, txMgr, shops, users, s); err != nil {
			fmt.Printf("Failed to seed shop %q: %v\n", s.Name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Seed completed")
}

func seedOne(ctx context.Context, txMgr *txmanager.TxManager, shops *shopRepo.Repository, users *userRepo.Repository, s seedShop) error {
	shopType, ok := domain.ParseShopType(s.Type)
	if !ok {
		return fmt.Errorf("unknown shop type %q", s.Type)
	}
	if s.OwnerEmail == "" || s.OwnerPassword == "" {
		return fmt.Errorf("owner credentials are required")
	}

	existing, err := shops.GetByNameAndType(ctx, s.Name, shopType)
	if err != nil && !errors.Is(err, shopRepo.ErrShopNotFound) {
		return err
	}
	if existing != nil {
		fmt.Printf("Shop %q (%s) already exists, skipping\n", s.Name, s.Type)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash owner password: %w", err)
	}

	return txMgr.Do(ctx, func(txCtx context.Context) error {
		owner, err := users.Create(txCtx, &domain.User{
			Email:        s.OwnerEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleOwner,
		})
		if err != nil {
			return err
		}

		shop, err := shops.Create(txCtx, &domain.Shop{
			Name:    s.Name,
			Type:    shopType,
			OwnerID: owner.ID,
		})
		if err != nil {
			return err
		}

		if err := users.SetShopID(txCtx, owner.ID, shop.ID); err != nil {
			return err
		}

		for _, entry := range s.Menu {
			if _, err := shops.AddMenuItem(txCtx, shop.ID, entry.Item, entry.Price); err != nil {
				return err
			}
		}
		for _, label := range s.Slots {
			if err := shops.UpsertSlot(txCtx, shop.ID, label, true); err != nil {
				return err
			}
		}
		for _, entry := range s.Laundry {
			category, ok := domain.ParseLaundryCategory(entry.Category)
			if !ok {
				return fmt.Errorf("unknown laundry category %q", entry.Category)
			}
			if _, err := shops.AddLaundryItem(txCtx, shop.ID, domain.LaundryCatalogItem{
				Category: category,
				Name:     entry.Name,
				Price:    entry.Price,
			}); err != nil {
				return err
			}
		}

		fmt.Printf("Seeded shop %q (%s), owner=%s\n", shop.Name, shop.Type, owner.Email)
		return nil
	})
}

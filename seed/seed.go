// Package seed creates and populates the demo database.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/satishbabariya/classql/runtime/client"
)

const rowsPerTable = 1000

// Summary reports how many rows each table holds after seeding
type Summary struct {
	Users    int64
	Products int64
	Posts    int64
}

// Run drops and recreates the demo tables, then fills each of them with
// random rows.
func Run(ctx context.Context, db *sql.DB) (*Summary, error) {
	if err := createSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedUsers(ctx, db, r); err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	if err := seedProducts(ctx, db, r); err != nil {
		return nil, fmt.Errorf("failed to seed products: %w", err)
	}
	if err := seedPosts(ctx, db, r); err != nil {
		return nil, fmt.Errorf("failed to seed posts: %w", err)
	}

	summary, err := summarize(ctx, db)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"users":    summary.Users,
		"products": summary.Products,
		"posts":    summary.Posts,
	}).Info("Database seeded")

	return summary, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		DROP TABLE IF EXISTS posts;
		DROP TABLE IF EXISTS products;
		DROP TABLE IF EXISTS users;

		CREATE TABLE users (
		  id INTEGER PRIMARY KEY AUTOINCREMENT,
		  name TEXT NOT NULL,
		  email TEXT UNIQUE NOT NULL,
		  role TEXT NOT NULL,
		  avatar TEXT,
		  status TEXT DEFAULT 'active',
		  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE products (
		  id INTEGER PRIMARY KEY AUTOINCREMENT,
		  title TEXT NOT NULL,
		  description TEXT,
		  price REAL NOT NULL,
		  category TEXT NOT NULL,
		  stock INTEGER DEFAULT 0,
		  rating REAL DEFAULT 0,
		  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE posts (
		  id INTEGER PRIMARY KEY AUTOINCREMENT,
		  title TEXT NOT NULL,
		  content TEXT,
		  author_id INTEGER,
		  likes INTEGER DEFAULT 0,
		  views INTEGER DEFAULT 0,
		  published INTEGER DEFAULT 0,
		  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		  FOREIGN KEY (author_id) REFERENCES users(id)
		);
	`)
	return err
}

func seedUsers(ctx context.Context, db *sql.DB, r *rand.Rand) error {
	return client.Transaction(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO users (name, email, role, avatar, status) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		used := make(map[string]struct{}, rowsPerTable)
		for i := 0; i < rowsPerTable; i++ {
			first := pick(r, firstNames)
			last := pick(r, lastNames)
			name := first + " " + last

			email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i)
			for {
				if _, taken := used[email]; !taken {
					break
				}
				email = fmt.Sprintf("%s.%s%d%d@example.com",
					strings.ToLower(first), strings.ToLower(last), i, 1+r.Intn(999))
			}
			used[email] = struct{}{}

			role := pick(r, roles)
			avatar := pick(r, avatars)
			status := pick(r, statuses)

			if _, err := stmt.ExecContext(ctx, name, email, role, avatar, status); err != nil {
				return err
			}
		}

		return nil
	})
}

func seedProducts(ctx context.Context, db *sql.DB, r *rand.Rand) error {
	return client.Transaction(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO products (title, description, price, category, stock, rating) VALUES (?, ?, ?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := 0; i < rowsPerTable; i++ {
			title := fmt.Sprintf("%s %s %d", pick(r, productAdjectives), pick(r, productNouns), i+1)
			description := pick(r, productDescriptions)
			price := randomFloat(r, 9.99, 999.99, 2)
			category := pick(r, categories)
			stock := r.Intn(501)
			rating := randomFloat(r, 1.0, 5.0, 1)

			if _, err := stmt.ExecContext(ctx, title, description, price, category, stock, rating); err != nil {
				return err
			}
		}

		return nil
	})
}

func seedPosts(ctx context.Context, db *sql.DB, r *rand.Rand) error {
	return client.Transaction(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO posts (title, content, author_id, likes, views, published) VALUES (?, ?, ?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i := 0; i < rowsPerTable; i++ {
			term1 := pick(r, techTerms)
			term2 := pick(r, techTerms)
			title := strings.Replace(pick(r, postTitles), "{}", term1, 1)
			title = strings.Replace(title, "{}", term2, 1)
			content := fmt.Sprintf("This is an in-depth article about %s and its applications in modern "+
				"software development. We'll explore best practices, common pitfalls, and advanced techniques.", term1)
			authorID := 1 + r.Intn(rowsPerTable)
			likes := r.Intn(10001)
			views := likes + 100 + r.Intn(49901)
			published := 0
			if r.Float64() < 0.8 {
				published = 1
			}

			if _, err := stmt.ExecContext(ctx, title, content, authorID, likes, views, published); err != nil {
				return err
			}
		}

		return nil
	})
}

func summarize(ctx context.Context, db *sql.DB) (*Summary, error) {
	var s Summary
	counts := []struct {
		table string
		dest  *int64
	}{
		{"users", &s.Users},
		{"products", &s.Products},
		{"posts", &s.Posts},
	}

	for _, c := range counts {
		row := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table))
		if err := row.Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	return &s, nil
}

func pick(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// randomFloat draws from [min, max] rounded to the given decimals.
func randomFloat(r *rand.Rand, min, max float64, decimals int) float64 {
	value := min + r.Float64()*(max-min)
	factor := math.Pow10(decimals)
	return math.Round(value*factor) / factor
}

package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"token-market.backend/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tokens (
		id TEXT PRIMARY KEY,
		token_address TEXT NOT NULL UNIQUE,
		protocol TEXT,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		blockchain TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSellerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sellers (
		id TEXT PRIMARY KEY,
		external_id TEXT NOT NULL UNIQUE,
		wallet_id TEXT,
		wallet_address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOfferTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE offers (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		token_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price_per_token REAL NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		buyer_external_id TEXT NOT NULL,
		buyer_wallet_id TEXT NOT NULL,
		offer_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		total_price TEXT NOT NULL,
		transaction_id TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSupportTicketTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE support_tickets (
		id TEXT PRIMARY KEY,
		ticket_number TEXT NOT NULL UNIQUE,
		tipo_problema TEXT NOT NULL,
		external_id TEXT,
		documento TEXT,
		correo TEXT NOT NULL,
		comentarios TEXT NOT NULL,
		archivos TEXT DEFAULT '[]',
		estado TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWebhookEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE webhook_events (
		id TEXT PRIMARY KEY,
		transaction_id TEXT NOT NULL UNIQUE,
		event_type TEXT NOT NULL,
		offer_id TEXT,
		amount INTEGER,
		payload TEXT DEFAULT '{}',
		created_at DATETIME
	);`)
}

func seedToken(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO tokens(id,token_address,protocol,name,symbol,blockchain,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		id.String(), "0x"+id.String()[:8], "erc20", "Edificio Central", "EDC", "polygon", time.Now(), time.Now())
	return id
}

func seedSeller(t *testing.T, db *gorm.DB, externalID string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO sellers(id,external_id,wallet_id,wallet_address,created_at,updated_at)
		VALUES (?,?,?,?,?,?)`,
		id.String(), externalID, "wallet-"+externalID, "0x52908400098527886E0F7030069857D2E4169EE7", time.Now(), time.Now())
	return id
}

func seedOffer(t *testing.T, db *gorm.DB, sellerID, tokenID uuid.UUID, quantity int64, status entities.OfferStatus) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO offers(id,seller_id,token_id,quantity,price_per_token,status,created_at,updated_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		id.String(), sellerID.String(), tokenID.String(), quantity, 500000.0, string(status), time.Now(), time.Now())
	return id
}

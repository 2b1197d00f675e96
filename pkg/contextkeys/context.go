package contextkeys

// Custom type so our keys can never collide with other packages.
type contextKey string

// DBContextKey is the key under which middleware stores the *gorm.DB
// (connection pool or an open transaction) for the current request.
const DBContextKey = contextKey("db")

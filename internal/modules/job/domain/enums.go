//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// MatchMode controls how a user's keywords combine when matching a job
// ENUM(any,all)
type MatchMode string

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

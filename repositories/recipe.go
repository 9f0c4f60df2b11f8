package repositories

import (
	"context"
	"cooksync/domain"
	"cooksync/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// RecipeRepository is the local catalog backing recipe lookups during
// session creation. In deployments where the catalog lives in another
// service this type is replaced by a client implementing the same
// contract.IRecipeProvider interface.
type RecipeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRecipeRepository(db *badger.DB, log *slog.Logger) RecipeRepository {
	return RecipeRepository{db: db, log: log}
}

func (r RecipeRepository) GetRecipe(_ context.Context, recipeID string) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf("recipe:%s", recipeID)))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &recipe)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Recipe{}, errors.ErrRecipeNotFound
	}
	if err != nil {
		return domain.Recipe{}, err
	}
	return recipe, nil
}

func (r RecipeRepository) StoreRecipe(recipe domain.Recipe) error {
	bytes, err := json.Marshal(recipe)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(fmt.Sprintf("recipe:%s", recipe.ID)), bytes)
	})
}

package storage

import "github.com/yourname/fitcoach/internal"

func NewFileRepositories(turnsFile, profilesFile string, logger internal.Logger) (TurnRepository, ProfileRepository, error) {
	storage, err := NewFileStorage(turnsFile, profilesFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (TurnRepository, ProfileRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

//nolint:whitespace //can't make both the linter and editor happy :(
package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1gp-track-go/pkg/model"
	"github.com/mpapenbr/f1gp-track-go/pkg/repository"
)

// Create inserts a new catalog entry and sets track.ID
func Create(ctx context.Context, conn repository.Querier, track *model.DbTrack) error {
	row := conn.QueryRow(ctx,
		"insert into track_file (name, checksum, data) values ($1,$2,$3) returning id",
		track.Name, int64(track.Checksum), track.Data)
	return row.Scan(&track.ID)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id int) (int, error) {
	cmdTag, err := conn.Exec(ctx, "delete from track_file where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func LoadByID(
	ctx context.Context,
	conn repository.Querier,
	id int,
) (*model.DbTrack, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where id=$1", selector), id)
	var item model.DbTrack
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadByChecksum(
	ctx context.Context,
	conn repository.Querier,
	checksum uint32,
) (*model.DbTrack, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where checksum=$1", selector), int64(checksum))
	var item model.DbTrack
	if err := scan(&item, row); err != nil {
		return nil, err
	}
	return &item, nil
}

func Update(
	ctx context.Context,
	conn repository.Querier,
	track *model.DbTrack,
) (int, error) {
	cmdTag, err := conn.Exec(ctx,
		"update track_file set name=$1, data=$2 where id=$3",
		track.Name, track.Data, track.ID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// EnsureTrack stores track keyed by checksum. An existing entry is updated,
// track.ID is set in both cases. Returns true if a new entry was created.
func EnsureTrack(
	ctx context.Context,
	conn repository.Querier,
	track *model.DbTrack,
) (bool, error) {
	existing, err := LoadByChecksum(ctx, conn, track.Checksum)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, Create(ctx, conn, track)
	}
	if err != nil {
		return false, err
	}
	track.ID = existing.ID
	_, err = Update(ctx, conn, track)
	return false, err
}

// little helper
const selector = string(`select id,name,checksum,data from track_file`)

func scan(e *model.DbTrack, row pgx.Row) error {
	var checksum int64
	if err := row.Scan(&e.ID, &e.Name, &checksum, &e.Data); err != nil {
		return err
	}
	e.Checksum = uint32(checksum)
	return nil
}

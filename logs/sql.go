package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key,
  time datetime,
  seed integer,
  width int,
  height int,
  mode varchar,
  generator varchar,
  weights varchar,
  pieces int,
  lines int,
  tetrises int,
  topped_out boolean
)`

const createSummaryView = `
CREATE VIEW IF NOT EXISTS game_summary (
  mode, generator, games, mean_lines, max_lines
) AS
SELECT mode, generator, count(*), avg(lines), max(lines)
 FROM games
 GROUP BY mode, generator
`

const insertStmt = `
INSERT INTO games (time, seed, width, height, mode, generator, weights, pieces, lines, tetrises, topped_out)
VALUES (:time, :seed, :width, :height, :mode, :generator, :weights, :pieces, :lines, :tetrises, :topped_out)
`

const selectAllGames = `
SELECT * FROM games ORDER BY id
`

const selectGamesByMode = `
SELECT * FROM games WHERE mode = ? ORDER BY id
`

const selectSummaries = `
SELECT * FROM game_summary ORDER BY mode, generator
`

package postgres

const eventColumns = `
id, title, description, category, address, city,
lng, lat, start_date, end_date, price, images, organizer_name,
status, created_at, updated_at`

const insertEventSQL = `
INSERT INTO events (
  id, title, description, category, address, city,
  lng, lat, start_date, end_date, price, images, organizer_name,
  status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
`

const getEventSQL = `
SELECT ` + eventColumns + `
FROM events WHERE id = $1
`

const updateEventSQL = `
UPDATE events SET
  title=$2, description=$3, category=$4, address=$5, city=$6,
  lng=$7, lat=$8, start_date=$9, end_date=$10, price=$11,
  images=$12, organizer_name=$13, updated_at=$14
WHERE id=$1
`

const setStatusSQL = `
UPDATE events SET status=$2, updated_at=$3
WHERE id=$1
RETURNING ` + eventColumns + `
`

const deleteEventSQL = `
DELETE FROM events WHERE id=$1
`

const listEventsSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE ($1 = '' OR status = $1)
ORDER BY created_at DESC
`

// Radius search on the cube/earthdistance extensions: earth_box narrows
// candidates through the GiST index, earth_distance applies the exact
// great-circle cut and the proximity ordering. ll_to_earth takes (lat, lng).
const findWithinRadiusSQL = `
SELECT ` + eventColumns + `
FROM events
WHERE ($4 = '' OR status = $4)
  AND earth_box(ll_to_earth($2, $1), $3) @> ll_to_earth(lat, lng)
  AND earth_distance(ll_to_earth($2, $1), ll_to_earth(lat, lng)) <= $3
ORDER BY earth_distance(ll_to_earth($2, $1), ll_to_earth(lat, lng)) ASC
`

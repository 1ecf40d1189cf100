// Package sqlinline holds every SQL statement as a marker-tagged constant.
// The first line of each constant is a --sql marker the runner strips and
// logs, so production log lines map back to the statement that produced
// them.
package sqlinline

const QInsertUser = `--sql 04d44bfb-695e-4294-b56d-77d97145b979
insert into users (id, username, email, full_name, password_hash, role, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, $5::text, now(), now())
returning id, created_at, updated_at;
`

const QSelectUserByID = `--sql dba54d6d-f953-4685-8b5a-65fde33935ae
select id, username, email, full_name, password_hash, role, refresh_token, created_at, updated_at
from users
where id = $1::uuid;
`

const QSelectUserByLogin = `--sql e3044a03-109f-4690-b77d-ee2723aa6574
select id, username, email, full_name, password_hash, role, refresh_token, created_at, updated_at
from users
where username = $1::text or email = $1::text
limit 1;
`

const QCountUserConflicts = `--sql 33b339af-563b-4a9c-8487-6cc841b3be1c
select count(*)
from users
where username = $1::text or email = $2::text;
`

const QUpdateUserFullName = `--sql e6a783a9-6564-48c3-befc-b5c89a7a364b
update users
set full_name = $2::text, updated_at = now()
where id = $1::uuid;
`

const QUpdateUserPassword = `--sql e87dc6b3-ee24-4df3-8ce8-43fe2ab29f9f
update users
set password_hash = $2::text, updated_at = now()
where id = $1::uuid;
`

const QSetUserRefreshToken = `--sql e85e8eec-e40f-4596-88ba-83931c3b358d
update users
set refresh_token = $2::text, updated_at = now()
where id = $1::uuid;
`

package sqlinline

const QInsertCampaign = `--sql 031448ae-3d80-40a5-ba83-59b81fb7ed73
insert into campaigns (id, title, description, category, goal_amount, status, created_by, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::bigint, 'active', $5::uuid, now(), now())
returning id, raised_amount, status, created_at, updated_at;
`

const QSelectCampaignByID = `--sql aee60b36-5976-43c3-8d13-92f92feb6aa2
select c.id, c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       c.created_by, c.created_at, c.updated_at,
       u.full_name, u.username
from campaigns c
join users u on u.id = c.created_by
where c.id = $1::uuid;
`

const QSelectCampaignState = `--sql b74bc0b5-f584-4868-8e32-6ed8bfeb9220
select created_by, status
from campaigns
where id = $1::uuid;
`

const QUpdateCampaign = `--sql afde9c71-f312-4e1d-846b-17df06097eb2
update campaigns
set title       = coalesce($2::text, title),
    description = coalesce($3::text, description),
    category    = coalesce($4::text, category),
    goal_amount = coalesce($5::bigint, goal_amount),
    status      = coalesce($6::text, status),
    updated_at  = now()
where id = $1::uuid
returning id, title, description, category, goal_amount, raised_amount, status, created_by, created_at, updated_at;
`

const QDeleteCampaign = `--sql 53086842-2c55-4400-b154-a3c67b4855da
delete from campaigns
where id = $1::uuid;
`

const QCountDonationsByCampaign = `--sql 439c39d7-bfdd-412a-9a7f-a0f5f86c5974
select count(*)
from donations
where campaign_id = $1::uuid;
`

// QListCampaigns is completed with a validated order clause before
// execution; the %s placeholder never receives client input directly.
const QListCampaigns = `--sql f5401a02-1ef1-4bc3-9ac2-844f7979e3da
select c.id, c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       c.created_at, c.updated_at,
       u.id, u.full_name, u.username,
       case when c.goal_amount > 0 then round(c.raised_amount::numeric / c.goal_amount * 100)::int else 0 end,
       c.raised_amount >= c.goal_amount
from campaigns c
join users u on u.id = c.created_by
where c.status = $1::text
  and ($2::text = '' or c.category = $2::text)
  and ($3::text = '' or c.title ilike $3::text or c.description ilike $3::text)
order by %s
limit $4::int offset $5::int;
`

const QCountCampaigns = `--sql c0e9f61d-5c99-46d0-a55a-a8c4c9d0656a
select count(*)
from campaigns c
where c.status = $1::text
  and ($2::text = '' or c.category = $2::text)
  and ($3::text = '' or c.title ilike $3::text or c.description ilike $3::text);
`

const QListOwnCampaigns = `--sql c640969d-154e-44d0-982c-f4944168cd58
select c.id, c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       c.created_at, c.updated_at,
       count(d.id),
       case when c.goal_amount > 0 then round(c.raised_amount::numeric / c.goal_amount * 100)::int else 0 end,
       c.raised_amount >= c.goal_amount
from campaigns c
left join donations d on d.campaign_id = c.id
where c.created_by = $1::uuid
  and ($2::text = '' or c.status = $2::text)
group by c.id
order by c.created_at desc
limit $3::int offset $4::int;
`

const QCountOwnCampaigns = `--sql 79a9596d-9fa1-4535-a8c5-915440b2dcf8
select count(*)
from campaigns
where created_by = $1::uuid
  and ($2::text = '' or status = $2::text);
`

const QCategoryStats = `--sql ae0ff430-1ada-4241-af55-ca5b481d66d5
select category, count(*), coalesce(sum(raised_amount), 0), coalesce(sum(goal_amount), 0)
from campaigns
group by category;
`

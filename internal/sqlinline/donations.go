package sqlinline

const QInsertDonation = `--sql 2586d8f7-fa18-4e70-91ef-109c5d109142
insert into donations (id, donor_id, campaign_id, amount, donated_at)
values (gen_random_uuid(), $1::uuid, $2::uuid, $3::bigint, now())
returning id, donated_at;
`

const QIncrementCampaignRaised = `--sql 925497d6-f249-4a14-8377-05a6b9603b5a
update campaigns
set raised_amount = raised_amount + $2::bigint, updated_at = now()
where id = $1::uuid;
`

const QSelectDonationDetail = `--sql 430a4c7e-9e07-4a8b-89b2-f2cd8ebeefa3
select d.id, d.amount, d.donated_at,
       u.id, u.full_name, u.username,
       c.id, c.title, c.description
from donations d
join users u on u.id = d.donor_id
join campaigns c on c.id = d.campaign_id
where d.id = $1::uuid;
`

const QSelectDonationByID = `--sql 9035fd09-a22d-438c-aefc-e67c90549740
select d.id, d.amount, d.donated_at,
       u.id, u.full_name, u.username, u.email,
       c.id, c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       c.created_by, n.full_name, n.username
from donations d
join users u on u.id = d.donor_id
join campaigns c on c.id = d.campaign_id
join users n on n.id = c.created_by
where d.id = $1::uuid;
`

// QDonationHistory is completed with a validated order clause before
// execution.
const QDonationHistory = `--sql ca9ff2c2-42ef-4612-89eb-526f8246c9f5
select d.id, d.amount, d.donated_at,
       c.id, c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       n.id, n.full_name, n.username
from donations d
join campaigns c on c.id = d.campaign_id
join users n on n.id = c.created_by
where d.donor_id = $1::uuid
order by %s
limit $2::int offset $3::int;
`

const QCountDonationsByDonor = `--sql 7f2ce192-a2d0-46f3-920f-ff5f3a91014d
select count(*)
from donations
where donor_id = $1::uuid;
`

const QDonorHistoryStats = `--sql c960e904-c960-427e-9527-26554562f031
select coalesce(sum(amount), 0), count(distinct campaign_id)
from donations
where donor_id = $1::uuid;
`

const QCampaignDonations = `--sql fcf463fc-bcb9-4b94-b6bc-39c182b840be
select d.id, d.amount, d.donated_at,
       u.id, u.full_name, u.username
from donations d
join users u on u.id = d.donor_id
where d.campaign_id = $1::uuid
order by d.donated_at desc
limit $2::int offset $3::int;
`

const QCampaignDonationStats = `--sql 740ff598-0183-491a-bd88-c4617c10500d
select coalesce(sum(amount), 0),
       count(distinct donor_id),
       coalesce(round(avg(amount)::numeric, 2), 0)::float8,
       coalesce(min(amount), 0),
       coalesce(max(amount), 0)
from donations
where campaign_id = $1::uuid;
`

const QSupportedCampaigns = `--sql 4e9a365a-0365-4f69-8eb0-b895fa4fd036
select g.campaign_id, g.total_donated, g.donation_count, g.last_donation,
       c.title, c.description, c.category, c.goal_amount, c.raised_amount, c.status,
       u.id, u.full_name, u.username,
       case when c.goal_amount > 0 then round(c.raised_amount::numeric / c.goal_amount * 100)::int else 0 end
from (
    select campaign_id, sum(amount) as total_donated, count(*) as donation_count, max(donated_at) as last_donation
    from donations
    where donor_id = $1::uuid
    group by campaign_id
) g
join campaigns c on c.id = g.campaign_id
join users u on u.id = c.created_by
where ($2::text = '' or c.status = $2::text)
order by g.last_donation desc
limit $3::int offset $4::int;
`

const QCountSupportedCampaigns = `--sql 8a00354d-3ec5-4a19-a1d1-a387792ea22d
select count(*)
from (
    select d.campaign_id
    from donations d
    join campaigns c on c.id = d.campaign_id
    where d.donor_id = $1::uuid
      and ($2::text = '' or c.status = $2::text)
    group by d.campaign_id
) g;
`

package sqlinline

const QNGOCampaignStats = `--sql 49fc4868-7f68-47a7-9c08-12704d3e4ecf
select count(*),
       count(*) filter (where status = 'active'),
       count(*) filter (where status = 'closed'),
       coalesce(sum(goal_amount), 0),
       coalesce(sum(raised_amount), 0)
from campaigns
where created_by = $1::uuid;
`

const QNGODonationStats = `--sql eb2ecc36-3994-448a-a983-b24918289ccf
select count(d.id),
       coalesce(sum(d.amount), 0),
       count(distinct d.donor_id),
       coalesce(round(avg(d.amount)::numeric, 2), 0)::float8
from donations d
join campaigns c on c.id = d.campaign_id
where c.created_by = $1::uuid;
`

const QNGORecentCampaigns = `--sql 72fde3a5-133f-433f-9707-0db027835eee
select id, title, goal_amount, raised_amount, status, created_at
from campaigns
where created_by = $1::uuid
order by created_at desc
limit 5;
`

const QNGOCampaignPerformance = `--sql bd272f4d-aee4-44a0-9138-22da22de5fa6
select c.id, c.title, c.goal_amount, c.raised_amount, c.status, c.created_at,
       count(d.id),
       case when c.goal_amount > 0 then round(c.raised_amount::numeric / c.goal_amount * 100, 1) else 0 end::float8
from campaigns c
left join donations d on d.campaign_id = c.id
where c.created_by = $1::uuid
group by c.id
order by c.raised_amount desc
limit 10;
`

const QNGOMonthlyDonations = `--sql 3baf8171-e6f8-4bb9-a4a1-0ab7a68c4979
select extract(year from d.donated_at)::int,
       extract(month from d.donated_at)::int,
       coalesce(sum(d.amount), 0),
       count(*)
from donations d
join campaigns c on c.id = d.campaign_id
where c.created_by = $1::uuid
  and d.donated_at >= date_trunc('month', now()) - interval '11 months'
group by 1, 2
order by 1, 2;
`

const QDonorDonationStats = `--sql 03c01720-5d6e-414e-92e3-0af9e7684e97
select count(*),
       coalesce(sum(amount), 0),
       coalesce(round(avg(amount)::numeric, 2), 0)::float8,
       count(distinct campaign_id)
from donations
where donor_id = $1::uuid;
`

const QDonorRecentDonations = `--sql 9cdbc885-b208-455e-ad2d-eb28f0c937f0
select d.id, d.amount, d.donated_at,
       c.id, c.title, c.description, c.category, c.status
from donations d
join campaigns c on c.id = d.campaign_id
where d.donor_id = $1::uuid
order by d.donated_at desc
limit 5;
`

const QDonorTopCampaigns = `--sql 600dfe65-a647-4c34-b665-1b296a5bf920
select g.campaign_id, g.total_donated, g.donation_count, g.last_donation,
       c.title, c.category, c.goal_amount, c.raised_amount, c.status,
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
order by g.total_donated desc
limit 10;
`

const QDonorByCategory = `--sql 8320fde1-8fb2-42e4-8bd4-03f85c802cec
select c.category, coalesce(sum(d.amount), 0), count(*)
from donations d
join campaigns c on c.id = d.campaign_id
where d.donor_id = $1::uuid
group by c.category
order by 2 desc;
`

const QDonorMonthlyDonations = `--sql 12b7756a-c2ab-4893-97e2-fc123bb98bf8
select extract(year from donated_at)::int,
       extract(month from donated_at)::int,
       coalesce(sum(amount), 0),
       count(*)
from donations
where donor_id = $1::uuid
  and donated_at >= date_trunc('month', now()) - interval '11 months'
group by 1, 2
order by 1, 2;
`

const QDonorImpactStats = `--sql f0015df7-1638-4792-9231-41763ee363da
select count(distinct d.campaign_id) filter (where c.raised_amount >= c.goal_amount),
       count(distinct d.campaign_id) filter (where c.status = 'active')
from donations d
join campaigns c on c.id = d.campaign_id
where d.donor_id = $1::uuid;
`

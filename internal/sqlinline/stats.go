package sqlinline

const QPlatformUserStats = `--sql 09dcd363-b537-45e2-8b00-d74facb9738f
select count(*),
       count(*) filter (where role = 'ngo'),
       count(*) filter (where role = 'donor')
from users;
`

const QPlatformCampaignStats = `--sql 19cd1d6c-b328-4b16-8040-c5ba8c8f9796
select count(*),
       count(*) filter (where status = 'active'),
       coalesce(sum(goal_amount), 0),
       coalesce(sum(raised_amount), 0)
from campaigns;
`

const QPlatformDonationStats = `--sql 9ca87954-ef4f-4f56-9a82-1862037447c8
select count(*),
       coalesce(sum(amount), 0),
       coalesce(round(avg(amount)), 0)::bigint
from donations;
`

const QPlatformCategoryStats = `--sql 653031a3-e514-4743-8e78-05043f38610b
select category, count(*), coalesce(sum(raised_amount), 0), coalesce(sum(goal_amount), 0)
from campaigns
group by category
order by count(*) desc;
`

package draft_api

package gemini

// Plantillas de prompt. Las variables se interpolan con fmt.Sprintf
// en cada adaptador.

const pictureDescriptionPrompt = `You are an assistant that writes prompts for an image generation model.
Look at the attached pet photo and produce a JSON object with exactly these fields:
{"positive_prompt": "...", "negative_prompt": "..."}
positive_prompt: a detailed description of the pet (species, breed traits, fur, pose, colors) to recreate it as a friendly cartoon avatar.
negative_prompt: elements to avoid (humans, text, watermarks, extra limbs, distortions).
Respond with the JSON object only.`

const careNotesPrompt = `You are a pet care expert.
Given a pet with category %q, birth date %s and gender %s, produce a JSON array of care notes.
Each note is an object: {"title": "...", "description": "...", "icon": "..."}.
icon must be exactly one of: %s.
Write 3 to 6 practical notes about feeding, exercise, grooming and health for this pet.
Respond with the JSON array only.`

const careTasksPrompt = `You are a pet care planner.
Given a pet with category %q and birth date %s, and the attached photo of the pet today, produce the care tasks for the day as a JSON array.
Each task is an object:
{"title": "...", "description": "...", "scheduled_time": "HH:MM" or null, "completed": false, "repeat": true/false, "sub_tasks": [...]}.
Each sub task is {"title": "...", "description": "...", "scheduled_time": "HH:MM", "completed": false}.
A task that has sub_tasks must have scheduled_time set to null; the schedule lives on each sub task.
Respond with the JSON array only.`

const careAdvicePrompt = `You are a friendly pet care advisor.
Pet category: %q. Birth date: %s. Date: %s. Weather: %s. Temperature: %s.
The attached photo shows the pet today.
Write one short paragraph of practical advice for caring for this pet today, considering the weather and what the photo shows.
Respond with plain text, no markdown.`

const chatSystemPrompt = `You are the personal care assistant for the pet with id %q.
Answer the user's questions about feeding, exercise, grooming, health and daily care.
Be concise, warm and practical. Answer in the user's language.`
